// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	"contacts-manager/internal/logger"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const noSelectionStatus = "No contact selected"

// --- Update Handlers ---
// These methods handle key presses on the contact list and open dialogs.

func (m *model) handleContactListKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Up):
		m.list.MoveUp()
	case key.Matches(msg, m.keymap.Down):
		m.list.MoveDown()
	case key.Matches(msg, m.keymap.Home):
		m.list.GotoTop()
	case key.Matches(msg, m.keymap.End):
		m.list.GotoBottom()

	case key.Matches(msg, m.keymap.SortFirst):
		m.list.Sort(sortFirstName)
		m.setStatus("Sorted by "+m.list.SortLabel(), false)
	case key.Matches(msg, m.keymap.SortLast):
		m.list.Sort(sortLastName)
		m.setStatus("Sorted by "+m.list.SortLabel(), false)

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keymap.Quit):
		cmds = append(cmds, m.requestQuit())
	case key.Matches(msg, m.keymap.ToggleTheme):
		cmds = append(cmds, m.toggleTheme())
	case key.Matches(msg, m.keymap.Copy):
		cmds = append(cmds, m.copySelectedEmail())

	default:
		// Everything below touches the store, one command at a time.
		if m.busy {
			return cmds
		}
		switch {
		case key.Matches(msg, m.keymap.Add):
			cmds = append(cmds, m.openAddDialog())
		case key.Matches(msg, m.keymap.Edit):
			cmds = append(cmds, m.openEditDialog())
		case key.Matches(msg, m.keymap.Delete):
			cmds = append(cmds, m.openDeleteDialog())
		case key.Matches(msg, m.keymap.ClearAll):
			cmds = append(cmds, m.openClearDialog())
		case key.Matches(msg, m.keymap.Refresh):
			m.busy = true
			cmds = append(cmds, loadContactsCmd(m.ctx, m.store, m.selectedID()))
		}
	}

	return cmds
}

func (m *model) pushDialog(d dialog) tea.Cmd {
	m.dialog = d
	return d.Init()
}

// startMutation marks the store busy and hands back the command to run.
func (m *model) startMutation(cmd tea.Cmd) tea.Cmd {
	m.busy = true
	m.setStatus("", false)
	return cmd
}

func (m *model) openAddDialog() tea.Cmd {
	return m.pushDialog(newEntryDialog("Add Contact", nil, m.keymap, m.theme, func(e entry, ok bool) tea.Cmd {
		if !ok {
			return nil
		}
		return m.startMutation(createContactCmd(m.ctx, m.store, e))
	}))
}

func (m *model) openEditDialog() tea.Cmd {
	c, ok := m.list.Selected()
	if !ok {
		m.setStatus(noSelectionStatus, true)
		return nil
	}
	existing := &entry{Name: c.Name, Phone: c.Phone, Email: c.Email}
	return m.pushDialog(newEntryDialog("Edit Contact", existing, m.keymap, m.theme, func(e entry, ok bool) tea.Cmd {
		if !ok {
			return nil
		}
		return m.startMutation(updateContactCmd(m.ctx, m.store, c.ID, e))
	}))
}

func (m *model) openDeleteDialog() tea.Cmd {
	c, ok := m.list.Selected()
	if !ok {
		m.setStatus(noSelectionStatus, true)
		return nil
	}
	message := fmt.Sprintf("Do you want to delete %s's contact?", displayName(c))
	return m.pushDialog(newConfirmDialog(message, m.keymap, m.theme, func(yes bool) tea.Cmd {
		if !yes {
			return nil
		}
		return m.startMutation(deleteContactCmd(m.ctx, m.store, c))
	}))
}

func (m *model) openClearDialog() tea.Cmd {
	n := m.list.Len()
	if n == 0 {
		m.setStatus("No contacts to clear", true)
		return nil
	}
	message := fmt.Sprintf("Do you want to delete all %d contacts?", n)
	return m.pushDialog(newConfirmDialog(message, m.keymap, m.theme, func(yes bool) tea.Cmd {
		if !yes {
			return nil
		}
		return m.startMutation(clearContactsCmd(m.ctx, m.store))
	}))
}

func (m *model) requestQuit() tea.Cmd {
	return m.pushDialog(newConfirmDialog("Do you want to quit?", m.keymap, m.theme, func(yes bool) tea.Cmd {
		if !yes {
			return nil
		}
		logger.Info("quit confirmed")
		return tea.Quit
	}))
}

func (m *model) toggleTheme() tea.Cmd {
	m.cfg.Theme = m.theme.other()
	m.theme = newTheme(m.cfg.Theme)
	m.list.SetStyles(m.theme.table)
	return saveThemeCmd(m.cfg)
}

func (m *model) copySelectedEmail() tea.Cmd {
	c, ok := m.list.Selected()
	if !ok {
		m.setStatus(noSelectionStatus, true)
		return nil
	}
	if c.Email == "" {
		m.setStatus(fmt.Sprintf("%s has no email", displayName(c)), true)
		return nil
	}
	return copyToClipboardCmd("email of "+displayName(c), c.Email)
}

// selectedID is the id under the cursor, or 0 when the list is empty.
func (m *model) selectedID() int64 {
	c, ok := m.list.Selected()
	if !ok {
		return 0
	}
	return c.ID
}

func (m *model) setStatus(s string, warn bool) {
	m.status = s
	m.statusWarn = warn
}

