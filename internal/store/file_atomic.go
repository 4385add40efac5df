// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// commitHook runs after the temporary file is fully written and before it
// replaces the target. Returning an error aborts the write.
type commitHook func(tmpPath string) error

// writeFileAtomic writes data to a temporary file in the target directory,
// fsyncs it and renames it over path. Readers see either the old content or
// the new one; on any failure the temporary file is removed and path is
// left untouched.
func writeFileAtomic(path string, data []byte, perm os.FileMode, beforeCommit commitHook) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithTempDir(dir), renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer pf.Cleanup()

	if _, err = pf.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if beforeCommit != nil {
		if err = beforeCommit(pf.Name()); err != nil {
			return fmt.Errorf("commit aborted: %w", err)
		}
	}

	if err = pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	return nil
}

// writeFileExclusive publishes data at path only if path does not exist
// yet. The content is written and fsynced under a temporary name first and
// then hard-linked into place, so a reader never sees a partial file and
// of two concurrent writers exactly one succeeds. A lost race is reported
// as an error wrapping [fs.ErrExist].
func writeFileExclusive(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = os.Link(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish file: %w", err)
	}
	return nil
}
