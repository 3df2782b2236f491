// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains Bubble Tea commands that talk to the
// contact store, the config file and the system clipboard. Each one reports back
// to the UI loop with a message from messages.go.

package ui

import (
	"context"
	"errors"
	"fmt"

	"contacts-manager/internal/config"
	"contacts-manager/internal/logger"
	"contacts-manager/internal/store"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// saveConfig is swapped out in tests.
var saveConfig = config.SaveConfig

// reload reads every contact back from the store.
func reload(ctx context.Context, s store.Store, focusID int64, status string) contactsLoadedMsg {
	contacts, err := s.All(ctx)
	if err != nil {
		return contactsLoadedMsg{err: err}
	}
	return contactsLoadedMsg{contacts: contacts, focusID: focusID, status: status}
}

// reloadAfterMissing reloads when a mutation targeted a row that no longer exists.
func reloadAfterMissing(ctx context.Context, s store.Store, id int64, err error) contactsLoadedMsg {
	logger.Warn("contact vanished before mutation", "id", id, "error", err)
	msg := reload(ctx, s, 0, fmt.Sprintf("Contact #%d no longer exists", id))
	msg.warn = true
	return msg
}

func loadContactsCmd(ctx context.Context, s store.Store, focusID int64) tea.Cmd {
	return func() tea.Msg {
		return reload(ctx, s, focusID, "")
	}
}

func createContactCmd(ctx context.Context, s store.Store, e entry) tea.Cmd {
	return func() tea.Msg {
		if _, err := s.Create(ctx, e.Name, e.Phone, e.Email); err != nil {
			return contactsLoadedMsg{err: err}
		}
		created, err := s.Last(ctx)
		if err != nil {
			return contactsLoadedMsg{err: fmt.Errorf("failed to read back new contact: %w", err)}
		}
		logger.Info("contact created", "id", created.ID)
		return reload(ctx, s, created.ID, fmt.Sprintf("Added %s", displayName(created)))
	}
}

func updateContactCmd(ctx context.Context, s store.Store, id int64, e entry) tea.Cmd {
	return func() tea.Msg {
		err := s.Update(ctx, id, e.Name, e.Phone, e.Email)
		if errors.Is(err, store.ErrNotFound) {
			return reloadAfterMissing(ctx, s, id, err)
		}
		if err != nil {
			return contactsLoadedMsg{err: err}
		}
		logger.Info("contact updated", "id", id)
		return reload(ctx, s, id, fmt.Sprintf("Updated %s", displayName(store.Contact{Name: e.Name})))
	}
}

func deleteContactCmd(ctx context.Context, s store.Store, c store.Contact) tea.Cmd {
	return func() tea.Msg {
		err := s.Delete(ctx, c.ID)
		if errors.Is(err, store.ErrNotFound) {
			return reloadAfterMissing(ctx, s, c.ID, err)
		}
		if err != nil {
			return contactsLoadedMsg{err: err}
		}
		logger.Info("contact deleted", "id", c.ID)
		return reload(ctx, s, 0, fmt.Sprintf("Deleted %s", displayName(c)))
	}
}

func clearContactsCmd(ctx context.Context, s store.Store) tea.Cmd {
	return func() tea.Msg {
		n, err := s.Clear(ctx)
		if err != nil {
			return contactsLoadedMsg{err: err}
		}
		logger.Info("contacts cleared", "count", n)
		return reload(ctx, s, 0, fmt.Sprintf("Removed %d contact(s)", n))
	}
}

// saveThemeCmd persists the display mode so the next session starts with it.
func saveThemeCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{theme: cfg.Theme, err: saveConfig(cfg)}
	}
}

func copyToClipboardCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{what: what, err: writeClipboard(text)}
	}
}

// displayName is the name shown in dialogs and status messages.
func displayName(c store.Contact) string {
	if c.Name == "" {
		return fmt.Sprintf("#%d", c.ID)
	}
	return c.Name
}
