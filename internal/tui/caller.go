// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/utils"
)

// caller bounds every storage call with the configured timeout and tags it
// with its own trace id.
type caller struct {
	timeout time.Duration
	logger  *logger.Logger
	ids     utils.IDGenerator
}

func (c caller) context(parent context.Context, op string) (context.Context, context.CancelFunc) {
	ctx := c.logger.WithTraceID(parent, c.ids.Generate())
	logger.FromContext(ctx).Debug().Str("op", op).Msg("storage call")

	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
