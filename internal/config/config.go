// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backends accepted in [Storage.Backend].
const (
	BackendLocal    = "local"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// go-save-keeper application. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and
// finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects the persistence backend and holds its settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the PBKDF2 work factors.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Backend is one of "local", "mongo", "postgres" or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// RequestTimeout bounds every single call into the storage layer.
	// Env: STORAGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Local holds the settings of the encrypted file backend.
	Local Local `envPrefix:"LOCAL_"`

	// Mongo holds the MongoDB connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Local holds file-system settings for the encrypted save files.
type Local struct {
	// Dir is the directory under which one sub-directory per player is kept.
	// Env: STORAGE_LOCAL_DIR
	Dir string `env:"DIR"`
}

// Mongo holds MongoDB connection settings.
type Mongo struct {
	// URI is the MongoDB connection string.
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the database name.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Crypto holds the PBKDF2 work factors of the password hasher and of the
// key derivation function. They are configured separately.
type Crypto struct {
	// HashIterations is the default work factor for new password digests.
	// Env: CRYPTO_HASH_ITERATIONS
	HashIterations int `env:"HASH_ITERATIONS"`

	// KDFIterations is the work factor used to derive save encryption keys.
	// Encrypted files do not record it: changing it makes existing local
	// saves unreadable.
	// Env: CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
