// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minIterations mirrors the floor enforced by the crypto package.
const minIterations = 100_000

// validate checks that the final merged [StructuredConfig] can start the
// selected backend.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}
	return cfg.Crypto.validate()
}

func (s Storage) validate() error {
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidStorageConfigs)
	}

	switch s.Backend {
	case BackendLocal:
		if s.Local.Dir == "" {
			return fmt.Errorf("%w: local dir is empty", ErrInvalidStorageConfigs)
		}
	case BackendMongo:
		if s.Mongo.URI == "" || s.Mongo.Database == "" {
			return fmt.Errorf("%w: mongo uri and database are required", ErrInvalidStorageConfigs)
		}
	case BackendPostgres, BackendSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}

func (c Crypto) validate() error {
	if c.HashIterations < minIterations || c.KDFIterations < minIterations {
		return fmt.Errorf("%w: iterations must be at least %d", ErrInvalidCryptoConfigs, minIterations)
	}
	return nil
}
