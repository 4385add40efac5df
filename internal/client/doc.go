// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive save keeper application runtime.
//
// It wires the configured storage backend, the save keeper service and the
// terminal UI into a single process lifecycle.
package client
