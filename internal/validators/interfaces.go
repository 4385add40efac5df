// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks what the player types before it reaches a store.
//
// A [Validator] accepts a value and an optional list of field names. With
// no names every field is checked; with names only those are, so a reset
// can check just the username of a [models.Login].
package validators

import "context"

// Validator validates a single value. Unknown value types fail with
// [ErrUnsupportedType] and unknown field names with [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
