// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"fmt"
	"os"

	"contacts-manager/internal/config"
	"contacts-manager/internal/logger"
	"contacts-manager/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg          config.Config
	contactStore store.Store

	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	warnColor       = color.New(color.FgYellow)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Contacts CLI",
	Long: `A small address book kept in a local SQLite database.

Run without arguments to open the terminal UI. The subcommands below work on the
same database (~/.local/share/contacts/contacts.db unless configured otherwise in
~/.config/contacts/config.yaml).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(false)

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		closeStore()
		return logger.Close()
	},
}

// RunCLI executes the command line in os.Args and exits non-zero on failure.
func RunCLI() {
	err := rootCmd.Execute()
	closeStore()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withStore opens the configured database for the duration of a command.
func withStore(fn func(cmd *cobra.Command, args []string, s store.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if contactStore == nil {
			path, err := cfg.ResolvedDatabasePath()
			if err != nil {
				return err
			}
			s, err := store.Open(path)
			if err != nil {
				return err
			}
			logger.Debug("database opened", "path", path)
			contactStore = s
		}
		return fn(cmd, args, contactStore)
	}
}

func closeStore() {
	if contactStore == nil {
		return
	}
	if err := contactStore.Close(); err != nil {
		logger.Warn("failed to close database", "error", err)
	}
	contactStore = nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
}
