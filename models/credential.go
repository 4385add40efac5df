// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the stored, password-free proof of a player's secret.
//
// PasswordDigest is a PBKDF2-HMAC-SHA256 output computed over the password
// with Salt and IterationCount. The iteration count is kept per credential
// so raising the default later does not invalidate existing profiles.
type Credential struct {
	Username       string    `json:"username"`
	PasswordDigest []byte    `json:"passwordDigest"`
	Salt           []byte    `json:"salt"`
	IterationCount int       `json:"iterationCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Login is the username and plaintext password a player types in. It never
// leaves the process.
type Login struct {
	Username string
	Password string
}
