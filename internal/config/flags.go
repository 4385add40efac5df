// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-backend storage backend: local, mongo, postgres or sqlite
//	-request-timeout per-call storage timeout (e.g., "5s")
//	-dir local saves directory
//	-mongo-uri MongoDB connection string
//	-mongo-db MongoDB database name
//	-d database DSN (PostgreSQL) or file path (SQLite)
//	-hash-iterations PBKDF2 work factor for password digests
//	-kdf-iterations PBKDF2 work factor for save encryption keys
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var backend string
	var requestTimeout time.Duration
	var localDir string
	var mongoURI, mongoDatabase string
	var databaseDSN string
	var hashIterations, kdfIterations int
	var jsonConfigPath string

	fs := flag.CommandLine
	fs.StringVar(&backend, "backend", "", "Storage backend: local, mongo, postgres, sqlite")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Storage request timeout (e.g., 5s)")
	fs.StringVar(&localDir, "dir", "", "Local saves directory")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&mongoDatabase, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&hashIterations, "hash-iterations", 0, "PBKDF2 iterations for password digests")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations for save encryption keys")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend:        backend,
			RequestTimeout: requestTimeout,
			Local:          Local{Dir: localDir},
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			DB: DB{DSN: databaseDSN},
		},
		Crypto: Crypto{
			HashIterations: hashIterations,
			KDFIterations:  kdfIterations,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
