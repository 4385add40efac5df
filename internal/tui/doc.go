// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal shell of the game. It keeps the
// running game state in memory and calls a [service.SaveKeeper] for every
// create, login, save, load and reset action.
package tui
