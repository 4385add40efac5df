// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/internal/store"
	"github.com/MKhiriev/go-save-keeper/internal/tui"
	"github.com/MKhiriev/go-save-keeper/models"
)

const closeTimeout = 5 * time.Second

// shell is the part of [tui.TUI] the application drives.
type shell interface {
	Run(ctx context.Context) error
}

// App owns the storage connections and the terminal UI of one process.
type App struct {
	storages *store.Storages
	keeper   service.SaveKeeper
	shell    shell
	logger   *logger.Logger
}

// NewApp opens the configured backend and builds the save keeper and the
// terminal UI on top of it. Connections opened here are released by
// [App.Close].
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	hasher := crypto.NewPasswordHasher(cfg.Crypto.HashIterations)
	kdf := crypto.NewKeyDeriver(cfg.Crypto.KDFIterations)
	cipher := crypto.NewCipher()

	storages, err := store.NewStorages(ctx, cfg.Storage, kdf, cipher, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	keeper, err := service.NewSaveKeeper(storages, hasher, log)
	if err != nil {
		_ = storages.Close(ctx)
		return nil, fmt.Errorf("create save keeper: %w", err)
	}

	ui := tui.New(keeper, storages.Backend, cfg.Storage.RequestTimeout, buildInfo, log)

	return &App{
		storages: storages,
		keeper:   keeper,
		shell:    ui,
		logger:   log,
	}, nil
}

// Run blocks until the player quits the shell or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("backend", a.storages.Backend).Msg("save keeper started")

	if err := a.shell.Run(ctx); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}

	a.logger.Info().Msg("save keeper stopped")
	return nil
}

// Close releases the storage connections.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := a.storages.Close(ctx); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}
	return nil
}
