// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-save-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is empty")
	ErrLongUsername    = errors.New("username is too long")
	ErrEmptyPassword   = errors.New("password is empty")
	ErrEmptyPlayerName = models.ErrEmptyPlayerName
	ErrInvalidLevel    = models.ErrInvalidLevel
	ErrNegativeScore   = models.ErrNegativeScore
)
