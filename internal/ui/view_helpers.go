// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

func (m *model) renderHeader() string {
	title := m.theme.titleStyle.Render("Contacts")
	count := m.theme.countStyle.Render(fmt.Sprintf(" %d total | %s", m.list.Len(), m.list.SortLabel()))
	return title + count
}

func (m *model) renderStatusLine() string {
	switch {
	case m.status != "" && m.statusWarn:
		return m.theme.warningStyle.Render(m.status)
	case m.status != "":
		return m.theme.statusStyle.Render(m.status)
	case m.busy:
		return m.theme.statusStyle.Render("Working...")
	}
	return ""
}

// --- State-Specific View Renderers ---
// Each returns the body and footer; View() adds the header.

func (m *model) renderLoadingView() (string, string) {
	body := m.theme.statusStyle.Render("Loading contacts...")
	footer := m.keymap.Quit.Help().Key + ": " + m.keymap.Quit.Help().Desc
	return body, footer
}

func (m *model) renderContactListView() (string, string) {
	var body string
	if m.list.Len() == 0 {
		body = m.theme.emptyStyle.Render(fmt.Sprintf("No contacts yet. Press %s to add one.", m.keymap.Add.Help().Key))
	} else {
		body = m.list.View()
	}

	footer := m.renderStatusLine() + "\n" + m.help.View(m.keymap)
	return body, footer
}

// renderDialogView centres the open dialog on screen.
func (m *model) renderDialogView() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
}
