// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"context"
	"fmt"

	"contacts-manager/internal/config"
	"contacts-manager/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	ctx   context.Context
	store store.Store
	cfg   config.Config

	keymap KeyMap
	help   help.Model
	theme  theme

	list         *contactList
	dialog       dialog // At most one; owns the keyboard while set
	currentState state

	busy       bool // A store command is in flight
	status     string
	statusWarn bool
	fatalErr   error // Store failure that ended the session

	width  int
	height int
}

// newModel builds the TUI model around an open store. cfg supplies the display
// mode and refresh behaviour, and is written back when the mode is toggled.
func newModel(ctx context.Context, s store.Store, cfg config.Config) *model {
	t := newTheme(cfg.Theme)
	m := &model{
		ctx:          ctx,
		store:        s,
		cfg:          cfg,
		keymap:       DefaultKeyMap,
		help:         help.New(),
		theme:        t,
		list:         newContactList(t.table, cfg.KeepSortOnRefresh),
		currentState: stateLoadingContacts,
		busy:         true,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.resize()
	return m
}

func (m *model) Init() tea.Cmd {
	return loadContactsCmd(m.ctx, m.store, 0)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, handleWindowSizeMsg(m, msg))

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		if m.dialog != nil {
			cmds = append(cmds, m.updateDialog(msg))
			break
		}
		switch m.currentState {
		case stateContactList:
			cmds = append(cmds, m.handleContactListKeys(msg)...)
		default: // Loading contacts
			if key.Matches(msg, m.keymap.Quit) {
				cmds = append(cmds, m.requestQuit())
			}
		}

	case contactsLoadedMsg:
		cmds = append(cmds, handleContactsLoadedMsg(m, msg))
	case themeSavedMsg:
		cmds = append(cmds, handleThemeSavedMsg(m, msg))
	case clipboardMsg:
		cmds = append(cmds, handleClipboardMsg(m, msg))
	}

	return m, tea.Batch(cmds...)
}

// updateDialog routes a key to the open dialog. When the dialog resolves it is
// closed first, so its continuation may open the next one.
func (m *model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	resolve, cmd := m.dialog.Update(msg)
	if resolve == nil {
		return cmd
	}
	m.dialog = nil
	return tea.Batch(cmd, resolve())
}

func (m *model) View() string {
	if m.dialog != nil {
		return m.renderDialogView()
	}

	var body, footer string
	switch m.currentState {
	case stateContactList:
		body, footer = m.renderContactListView()
	default:
		body, footer = m.renderLoadingView()
	}
	return m.renderHeader() + "\n\n" + body + "\n" + footer
}

// Run starts the TUI on the terminal and blocks until it exits. The error is
// either a terminal failure or the store error that ended the session.
func Run(ctx context.Context, s store.Store, cfg config.Config) error {
	m := newModel(ctx, s, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.fatalErr
}
