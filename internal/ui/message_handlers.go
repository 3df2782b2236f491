// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	"contacts-manager/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Message Handlers ---

func handleWindowSizeMsg(m *model, msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	return nil
}

// resize gives the table whatever height the header, status line and help
// footer leave over.
func (m *model) resize() {
	m.help.Width = m.width
	helpHeight := lipgloss.Height(m.help.View(m.keymap))
	m.list.SetSize(m.width, m.height-headerHeight-statusHeight-helpHeight-1)
}

func handleContactsLoadedMsg(m *model, msg contactsLoadedMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		logger.Error("store operation failed", "error", msg.err)
		m.fatalErr = msg.err
		return tea.Quit
	}

	m.list.Refresh(msg.contacts)
	if msg.focusID != 0 {
		m.list.Select(msg.focusID)
	}
	if m.currentState == stateLoadingContacts {
		logger.Info("contacts loaded", "count", len(msg.contacts))
		m.currentState = stateContactList
	}
	if msg.status != "" {
		m.setStatus(msg.status, msg.warn)
	}
	return nil
}

func handleThemeSavedMsg(m *model, msg themeSavedMsg) tea.Cmd {
	if msg.err != nil {
		logger.Warn("failed to save theme", "theme", msg.theme, "error", msg.err)
		m.setStatus(fmt.Sprintf("Switched to %s mode (not saved: %v)", msg.theme, msg.err), true)
		return nil
	}
	m.setStatus(fmt.Sprintf("Switched to %s mode", msg.theme), false)
	return nil
}

func handleClipboardMsg(m *model, msg clipboardMsg) tea.Cmd {
	if msg.err != nil {
		logger.Warn("clipboard write failed", "error", msg.err)
		m.setStatus(fmt.Sprintf("Could not copy %s: %v", msg.what, msg.err), true)
		return nil
	}
	m.setStatus(fmt.Sprintf("Copied %s", msg.what), false)
	return nil
}
