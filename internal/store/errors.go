// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrSaveNotFound is returned when no save exists for the requested
	// player or path.
	ErrSaveNotFound = errors.New("save was not found")

	// ErrWrongPasswordOrCorrupt is returned by the encrypted file store when
	// a save cannot be opened. A wrong password and tampered bytes are
	// indistinguishable to the authenticated cipher, so they share one error.
	ErrWrongPasswordOrCorrupt = errors.New("wrong password or corrupted save")

	// ErrIO is returned when the local file system cannot be read or written.
	ErrIO = errors.New("local storage i/o error")

	// ErrDuplicateUsername is returned when a profile with the same username
	// already exists.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrProfileNotFound is returned when no profile matches a username.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrStoreUnavailable wraps every remote store failure that is not one of
	// the conditions above (network, timeout, server errors).
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrInvalidUsername is returned when a username cannot be used as a
	// single path element of the local saves directory.
	ErrInvalidUsername = errors.New("invalid username")
)

// Low-level SQL errors, wrapped together with [ErrStoreUnavailable].
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
