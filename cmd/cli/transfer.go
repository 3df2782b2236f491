// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"contacts-manager/internal/logger"
	"contacts-manager/internal/store"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Write every contact as YAML or JSON",
	Example: "  contacts export > contacts.yaml\n  contacts export --format json --output contacts.json",
	Args:    cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		contacts, err := s.All(commandContext(cmd))
		if err != nil {
			return err
		}
		data, err := encodeContacts(contacts, exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		// Write with permissions rw-r----- (0640)
		if err := os.WriteFile(exportOutput, data, 0640); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Exported %d contact(s) to %s\n", len(contacts), exportOutput)
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add contacts from a YAML or JSON file",
	Long: `Reads a list of contacts ({name, phone, email}) and adds each one as a new
contact. Identifiers in the file are ignored; every record gets a fresh one.
Entries without a name are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		ctx := commandContext(cmd)
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		contacts, err := decodeContacts(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Writer = cmd.ErrOrStderr()
		sp.Color("cyan")
		sp.Suffix = fmt.Sprintf(" Importing %d contact(s)...", len(contacts))
		sp.Start()

		imported, skipped := 0, 0
		for _, c := range contacts {
			if c.Name == "" {
				skipped++
				continue
			}
			if _, err := s.Create(ctx, c.Name, c.Phone, c.Email); err != nil {
				sp.Stop()
				return fmt.Errorf("import stopped after %d contact(s): %w", imported, err)
			}
			imported++
		}
		sp.Stop()
		logger.Debug("contacts imported", "file", args[0], "count", imported, "skipped", skipped)

		successColor.Fprintf(cmd.OutOrStdout(), "Imported %d contact(s)", imported)
		if skipped > 0 {
			warnColor.Fprintf(cmd.OutOrStdout(), " (%d without a name skipped)", skipped)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}),
}

func encodeContacts(contacts []store.Contact, format string) ([]byte, error) {
	if contacts == nil {
		contacts = []store.Contact{}
	}
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		data, err := yaml.Marshal(contacts)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal contacts to YAML: %w", err)
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(contacts, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal contacts to JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

// decodeContacts parses an exported list. JSON input is valid YAML, so one
// decoder covers both formats. Fields come back trimmed.
func decodeContacts(data []byte) ([]store.Contact, error) {
	var contacts []store.Contact
	if err := yaml.Unmarshal(data, &contacts); err != nil {
		return nil, err
	}
	for i := range contacts {
		contacts[i].Name = strings.TrimSpace(contacts[i].Name)
		contacts[i].Phone = strings.TrimSpace(contacts[i].Phone)
		contacts[i].Email = strings.TrimSpace(contacts[i].Email)
	}
	return contacts, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
}
