// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/store"
)

// ErrorKind is a stable classification of everything a [SaveKeeper] can
// fail with. The shell shows [ErrorKind.Message] and never the raw error.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindWrongPasswordOrCorrupt
	KindWrongPassword
	KindProfileNotFound
	KindDuplicateUsername
	KindStoreUnavailable
	KindIO
	KindInvalidInput
	KindUnsupported
	KindInternal
)

// KindOf maps err onto an [ErrorKind]. Wrapped errors are unwrapped with
// [errors.Is]; anything unrecognised is [KindInternal].
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, store.ErrWrongPasswordOrCorrupt):
		return KindWrongPasswordOrCorrupt
	case errors.Is(err, ErrWrongPassword):
		return KindWrongPassword
	case errors.Is(err, store.ErrProfileNotFound):
		return KindProfileNotFound
	case errors.Is(err, store.ErrSaveNotFound):
		return KindNotFound
	case errors.Is(err, store.ErrDuplicateUsername):
		return KindDuplicateUsername
	case errors.Is(err, store.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindStoreUnavailable
	case errors.Is(err, store.ErrIO):
		return KindIO
	case errors.Is(err, ErrInvalidDataProvided),
		errors.Is(err, store.ErrInvalidUsername),
		errors.Is(err, crypto.ErrIterationsTooLow):
		return KindInvalidInput
	case errors.Is(err, ErrLeaderboardUnsupported):
		return KindUnsupported
	}
	return KindInternal
}

var kindNames = map[ErrorKind]string{
	KindNone:                   "None",
	KindNotFound:               "NotFound",
	KindWrongPasswordOrCorrupt: "WrongPasswordOrCorrupt",
	KindWrongPassword:          "WrongPassword",
	KindProfileNotFound:        "ProfileNotFound",
	KindDuplicateUsername:      "DuplicateUsername",
	KindStoreUnavailable:       "StoreUnavailable",
	KindIO:                     "IO",
	KindInvalidInput:           "InvalidInput",
	KindUnsupported:            "Unsupported",
	KindInternal:               "Internal",
}

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Message returns the text shown to the player.
func (k ErrorKind) Message() string {
	switch k {
	case KindNone:
		return ""
	case KindNotFound:
		return "Сохранение не найдено."
	case KindWrongPasswordOrCorrupt:
		return "Неверный пароль или файл сохранения повреждён."
	case KindWrongPassword:
		return "Неверный пароль."
	case KindProfileNotFound:
		return "Профиль не найден."
	case KindDuplicateUsername:
		return "Игрок с таким именем уже существует."
	case KindStoreUnavailable:
		return "Хранилище недоступно. Попробуйте позже."
	case KindIO:
		return "Ошибка чтения или записи файла сохранения."
	case KindInvalidInput:
		return "Некорректные данные. Проверьте имя и пароль."
	case KindUnsupported:
		return "Таблица лидеров недоступна для локального хранилища."
	default:
		return "Внутренняя ошибка."
	}
}
