// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"contacts-manager/internal/logger"
	"contacts-manager/internal/store"

	"github.com/spf13/cobra"
)

var (
	listSortBy string
	listDesc   bool

	addPhone string
	addEmail string

	editName  string
	editPhone string
	editEmail string

	deleteYes bool
	clearYes  bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all contacts",
	Example: "  contacts list\n  contacts list --sort last --desc",
	Args:    cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		contacts, err := s.All(commandContext(cmd))
		if err != nil {
			return err
		}
		if err := sortContacts(contacts, listSortBy, listDesc); err != nil {
			return err
		}
		printContacts(cmd.OutOrStdout(), contacts)
		return nil
	}),
}

var addCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Add a contact",
	Example: `  contacts add "Ann Zephyr" --phone 555-0100 --email ann@example.com`,
	Args:    cobra.ExactArgs(1),
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		ctx := commandContext(cmd)
		name := strings.TrimSpace(args[0])
		if name == "" {
			return errors.New("name must not be empty")
		}

		if _, err := s.Create(ctx, name, strings.TrimSpace(addPhone), strings.TrimSpace(addEmail)); err != nil {
			return err
		}
		created, err := s.Last(ctx)
		if err != nil {
			return err
		}
		logger.Debug("contact created", "id", created.ID)

		successColor.Fprintf(cmd.OutOrStdout(), "Added %s\n", describeContact(created))
		return nil
	}),
}

var editCmd = &cobra.Command{
	Use:               "edit <id>",
	Short:             "Change the fields of a contact",
	Long:              `Updates the given contact. Fields whose flags are not given keep their current values.`,
	Example:           "  contacts edit 3 --phone 555-0199\n  contacts edit 3 --name \"Ann Young\" --email \"\"",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactCompletionFunc,
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		ctx := commandContext(cmd)
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := s.Get(ctx, id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("name") && !flags.Changed("phone") && !flags.Changed("email") {
			return errors.New("nothing to change: pass --name, --phone or --email")
		}
		if flags.Changed("name") {
			c.Name = strings.TrimSpace(editName)
		}
		if flags.Changed("phone") {
			c.Phone = strings.TrimSpace(editPhone)
		}
		if flags.Changed("email") {
			c.Email = strings.TrimSpace(editEmail)
		}
		if c.Name == "" {
			return errors.New("name must not be empty")
		}

		if err := s.Update(ctx, c.ID, c.Name, c.Phone, c.Email); err != nil {
			return err
		}
		logger.Debug("contact updated", "id", c.ID)

		successColor.Fprintf(cmd.OutOrStdout(), "Updated %s\n", describeContact(c))
		return nil
	}),
}

var deleteCmd = &cobra.Command{
	Use:               "delete <id>",
	Aliases:           []string{"rm"},
	Short:             "Delete a contact",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactCompletionFunc,
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		ctx := commandContext(cmd)
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := s.Get(ctx, id)
		if err != nil {
			return err
		}

		if !deleteYes {
			question := fmt.Sprintf("Do you want to delete %s's contact?", c.Name)
			ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question)
			if err != nil {
				return err
			}
			if !ok {
				dimColor.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
				return nil
			}
		}

		if err := s.Delete(ctx, c.ID); err != nil {
			return err
		}
		logger.Debug("contact deleted", "id", c.ID)

		successColor.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", describeContact(c))
		return nil
	}),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every contact",
	Args:  cobra.NoArgs,
	RunE: withStore(func(cmd *cobra.Command, args []string, s store.Store) error {
		if !clearYes {
			return errors.New("refusing to delete every contact without --yes")
		}
		n, err := s.Clear(commandContext(cmd))
		if err != nil {
			return err
		}
		logger.Debug("contacts cleared", "count", n)

		successColor.Fprintf(cmd.OutOrStdout(), "Removed %d contact(s)\n", n)
		return nil
	}),
}

// sortContacts orders contacts in place the way the TUI's name sorts do:
// by first then last token, or last then first. Ties keep insertion order.
func sortContacts(contacts []store.Contact, by string, desc bool) error {
	var key func(c store.Contact) [2]string
	switch by {
	case "":
		if desc {
			slices.Reverse(contacts)
		}
		return nil
	case "first":
		key = func(c store.Contact) [2]string { return [2]string{c.FirstName(), c.LastName()} }
	case "last":
		key = func(c store.Contact) [2]string { return [2]string{c.LastName(), c.FirstName()} }
	default:
		return fmt.Errorf("unknown sort %q (want first or last)", by)
	}

	slices.SortStableFunc(contacts, func(a, b store.Contact) int {
		ka, kb := key(a), key(b)
		c := strings.Compare(ka[0], kb[0])
		if c == 0 {
			c = strings.Compare(ka[1], kb[1])
		}
		if desc {
			return -c
		}
		return c
	})
	return nil
}

func printContacts(w io.Writer, contacts []store.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, "No contacts.")
		return
	}
	fmt.Fprintf(w, "%-6s %-30s %-18s %s\n", "ID", "NAME", "PHONE", "EMAIL")
	fmt.Fprintf(w, "%-6s %-30s %-18s %s\n", strings.Repeat("-", 6), strings.Repeat("-", 30), strings.Repeat("-", 18), strings.Repeat("-", 5))
	for _, c := range contacts {
		fmt.Fprintf(w, "%s %-30s %-18s %s\n", identifierColor.Sprintf("%-6d", c.ID), c.Name, c.Phone, c.Email)
	}
}

func describeContact(c store.Contact) string {
	return fmt.Sprintf("#%s %s", identifierColor.Sprint(c.ID), c.Name)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id %q", arg)
	}
	return id, nil
}

// confirm asks a y/N question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	warnColor.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func init() {
	listCmd.Flags().StringVar(&listSortBy, "sort", "", "Sort by 'first' or 'last' name")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Reverse the order")

	addCmd.Flags().StringVar(&addPhone, "phone", "", "Phone number")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Email address")

	editCmd.Flags().StringVar(&editName, "name", "", "New name")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "New phone number")
	editCmd.Flags().StringVar(&editEmail, "email", "", "New email address")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deleting every contact")
}
