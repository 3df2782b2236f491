// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"context"
	"fmt"
	"os"

	"contacts-manager/internal/config"
	"contacts-manager/internal/logger"
	"contacts-manager/internal/store"
	"contacts-manager/internal/ui"
)

// RunTUI opens the configured contact database and runs the Bubble Tea TUI on it.
// It exits the process with status 1 if startup or the session fails.
func RunTUI() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger.InitLogger(true)
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	dbPath, err := cfg.ResolvedDatabasePath()
	if err != nil {
		return err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()
	logger.Info("TUI started", "database", s.Path(), "theme", cfg.Theme)

	if err := ui.Run(ctx, s, cfg); err != nil {
		logger.Error("TUI exited with error", "error", err)
		return err
	}
	return nil
}
