// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"contacts-manager/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage contacts configuration",
	Long: `Provides subcommands to inspect and change the contacts configuration file.
Set CONTACTS_CONFIG to use a file other than ~/.config/contacts/config.yaml.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, string(data))

		dbPath, err := cfg.ResolvedDatabasePath()
		if err != nil {
			return err
		}
		dimColor.Fprintf(out, "# database file: %s\n", dbPath)
		return nil
	},
}

var configSetDBCmd = &cobra.Command{
	Use:   "set-db <path>",
	Short: "Set the database file location",
	Long: `Sets the SQLite file contacts are kept in.
Use an absolute path or a path starting with '~/' (e.g., '~/contacts.db').
To revert to the default location, set the path to an empty string: contacts config set-db ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := args[0]
		if dbPath != "" && !strings.HasPrefix(dbPath, "/") && !strings.HasPrefix(dbPath, "~/") {
			return fmt.Errorf("path must be absolute or start with '~/'")
		}

		cfg.DatabasePath = dbPath
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		if dbPath == "" {
			successColor.Fprintln(cmd.OutOrStdout(), "Database path reset to the default location.")
		} else {
			successColor.Fprintf(cmd.OutOrStdout(), "Database path set to: %s\n", dbPath)
		}
		return nil
	},
}

var configSetThemeCmd = &cobra.Command{
	Use:       "set-theme <dark|light>",
	Short:     "Set the display mode the TUI starts in",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{config.ThemeDark, config.ThemeLight},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Theme = strings.ToLower(args[0])
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Theme set to: %s\n", cfg.Theme)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDBCmd)
	configCmd.AddCommand(configSetThemeCmd)
}
