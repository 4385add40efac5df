// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags gives every test a clean flag.CommandLine and fake os.Args.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(nopWriter{})

	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags",
			args: []string{
				"-backend", "postgres",
				"-request-timeout", "2s",
				"-dir", "./saves",
				"-mongo-uri", "mongodb://m:27017",
				"-mongo-db", "g",
				"-d", "postgres://localhost/game",
				"-hash-iterations", "120000",
				"-kdf-iterations", "130000",
				"-c", "cfg.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
				assert.Equal(t, 2*time.Second, cfg.Storage.RequestTimeout)
				assert.Equal(t, "./saves", cfg.Storage.Local.Dir)
				assert.Equal(t, "mongodb://m:27017", cfg.Storage.Mongo.URI)
				assert.Equal(t, "g", cfg.Storage.Mongo.Database)
				assert.Equal(t, "postgres://localhost/game", cfg.Storage.DB.DSN)
				assert.Equal(t, 120000, cfg.Crypto.HashIterations)
				assert.Equal(t, 130000, cfg.Crypto.KDFIterations)
				assert.Equal(t, "cfg.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "other.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "other.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg, err := ParseFlags()
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-a", "localhost:8080"}},
		{name: "bad duration", args: []string{"-request-timeout", "later"}},
		{name: "bad iterations", args: []string{"-kdf-iterations", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg, err := ParseFlags()
			assert.Nil(t, cfg)
			require.Error(t, err)
		})
	}
}
