// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher превращает пароль игрока в хранимое доказательство знания
// пароля (PBKDF2-HMAC-SHA256). Сам пароль нигде не сохраняется.
type PasswordHasher interface {
	// Hash вычисляет дайджест пароля.
	// Пустая соль заменяется 16 случайными байтами, iterations == 0 означает
	// значение по умолчанию. Возвращает дайджест вместе с солью и числом
	// итераций: всё это нужно сохранить рядом с профилем.
	Hash(password string, salt []byte, iterations int) (PasswordHash, error)

	// Verify пересчитывает дайджест с сохранёнными солью и числом итераций
	// и сравнивает за постоянное время.
	Verify(password string, stored PasswordHash) bool
}

// KeyDeriver выводит 32-байтный ключ шифрования из пароля и соли.
// Это отдельный вызов с отдельной настройкой итераций: ключ шифрования
// никогда не совпадает с дайджестом пароля.
type KeyDeriver interface {
	// NewSalt генерирует свежую соль (16 байт) для одного сохранения.
	NewSalt() ([]byte, error)

	// DeriveKey детерминированно выводит ключ из пароля и соли.
	DeriveKey(password string, salt []byte) ([]byte, error)
}

// Cipher шифрует данные AES-256-GCM с отдельно хранимым тегом.
type Cipher interface {
	// Encrypt шифрует plaintext ключом key на свежем случайном nonce.
	Encrypt(key, plaintext []byte) (Sealed, error)

	// Decrypt проверяет тег и расшифровывает. Любое несоответствие
	// (ключ, nonce, тег, шифртекст) даёт ErrAuthenticationFailed.
	Decrypt(key []byte, sealed Sealed) ([]byte, error)
}
