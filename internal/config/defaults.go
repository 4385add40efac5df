// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultBackend        = BackendLocal
	defaultRequestTimeout = 5 * time.Second
	defaultLocalDir       = "Saves"
	defaultMongoURI       = "mongodb://localhost:27017"
	defaultMongoDatabase  = "game"
	defaultIterations     = 100_000
)

// defaultConfig returns the built-in values used for every field that no
// other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Backend:        defaultBackend,
			RequestTimeout: defaultRequestTimeout,
			Local:          Local{Dir: defaultLocalDir},
			Mongo: Mongo{
				URI:      defaultMongoURI,
				Database: defaultMongoDatabase,
			},
		},
		Crypto: Crypto{
			HashIterations: defaultIterations,
			KDFIterations:  defaultIterations,
		},
	}
}
