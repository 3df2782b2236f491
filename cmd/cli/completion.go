// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"strconv"
	"strings"

	"contacts-manager/internal/config"
	"contacts-manager/internal/store"

	"github.com/spf13/cobra"
)

// contactCompletionFunc suggests contact ids, described by name. Completion
// runs without the root command's hooks, so it loads config itself.
func contactCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	contacts, err := contactsForCompletion()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return completeContactIDs(contacts, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func contactsForCompletion() ([]store.Contact, error) {
	c, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	path, err := c.ResolvedDatabasePath()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.All(context.Background())
}

// completeContactIDs returns "id\tname" pairs whose id starts with toComplete.
func completeContactIDs(contacts []store.Contact, toComplete string) []string {
	var suggestions []string
	for _, c := range contacts {
		id := strconv.FormatInt(c.ID, 10)
		if strings.HasPrefix(id, toComplete) {
			suggestions = append(suggestions, id+"\t"+c.Name)
		}
	}
	return suggestions
}
