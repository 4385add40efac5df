// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedEnvelope is the on-disk form of an encrypted save.
//
// encoding/json writes every []byte field as a standard base64 string, which
// gives the file layout {"salt","nonce","tag","data"}. The layout carries no
// version field and must stay readable by older builds.
type EncryptedEnvelope struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Tag   []byte `json:"tag"`
	Data  []byte `json:"data"`
}
