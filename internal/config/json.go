// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	Storage struct {
		Backend        string   `json:"backend"`
		RequestTimeout Duration `json:"request_timeout"`

		Local struct {
			Dir string `json:"dir"`
		} `json:"local,omitempty"`

		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		HashIterations int `json:"hash_iterations"`
		KDFIterations  int `json:"kdf_iterations"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Backend:        jsonCfg.Storage.Backend,
			RequestTimeout: time.Duration(jsonCfg.Storage.RequestTimeout),
			Local:          Local{Dir: jsonCfg.Storage.Local.Dir},
			Mongo: Mongo{
				URI:      jsonCfg.Storage.Mongo.URI,
				Database: jsonCfg.Storage.Mongo.Database,
			},
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Crypto: Crypto{
			HashIterations: jsonCfg.Crypto.HashIterations,
			KDFIterations:  jsonCfg.Crypto.KDFIterations,
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration so the JSON file may use either a string
// such as "5s" or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
