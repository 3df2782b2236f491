// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"contacts-manager/internal/config"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// theme groups every style the TUI renders with, so the display mode can be
// switched by swapping one value.
type theme struct {
	name string

	titleStyle     lipgloss.Style
	countStyle     lipgloss.Style
	statusStyle    lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	cursorStyle    lipgloss.Style
	labelStyle     lipgloss.Style
	dialogStyle    lipgloss.Style
	buttonStyle    lipgloss.Style
	activeYesStyle lipgloss.Style
	activeNoStyle  lipgloss.Style
	emptyStyle     lipgloss.Style

	table table.Styles
}

type palette struct {
	accent, text, muted, border, warning, danger, success, selectedFg, selectedBg lipgloss.Color
}

var (
	darkPalette = palette{
		accent:     lipgloss.Color("62"),
		text:       lipgloss.Color("252"),
		muted:      lipgloss.Color("241"),
		border:     lipgloss.Color("238"), // Light grey border
		warning:    lipgloss.Color("11"),
		danger:     lipgloss.Color("9"),
		success:    lipgloss.Color("10"),
		selectedFg: lipgloss.Color("230"),
		selectedBg: lipgloss.Color("62"),
	}
	lightPalette = palette{
		accent:     lipgloss.Color("25"),
		text:       lipgloss.Color("235"),
		muted:      lipgloss.Color("244"),
		border:     lipgloss.Color("250"),
		warning:    lipgloss.Color("130"),
		danger:     lipgloss.Color("160"),
		success:    lipgloss.Color("28"),
		selectedFg: lipgloss.Color("255"),
		selectedBg: lipgloss.Color("25"),
	}
)

func newTheme(name string) theme {
	p := darkPalette
	if name == config.ThemeLight {
		p = lightPalette
	} else {
		name = config.ThemeDark
	}

	button := lipgloss.NewStyle().Padding(0, 2).MarginRight(2).Foreground(p.text).Background(p.border)

	t := theme{
		name:           name,
		titleStyle:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		countStyle:     lipgloss.NewStyle().Foreground(p.muted),
		statusStyle:    lipgloss.NewStyle().Foreground(p.muted),
		warningStyle:   lipgloss.NewStyle().Foreground(p.warning),
		errorStyle:     lipgloss.NewStyle().Foreground(p.danger),
		cursorStyle:    lipgloss.NewStyle().Foreground(p.accent),
		labelStyle:     lipgloss.NewStyle().Foreground(p.muted).Width(8),
		dialogStyle:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(p.accent).Padding(1, 2),
		buttonStyle:    button,
		activeYesStyle: button.Background(p.danger).Foreground(p.selectedFg).Bold(true),
		activeNoStyle:  button.Background(p.accent).Foreground(p.selectedFg).Bold(true),
		emptyStyle:     lipgloss.NewStyle().Foreground(p.muted).Italic(true).Padding(1, 1),
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.border).
		BorderBottom(true).
		Bold(true).
		Foreground(p.accent)
	ts.Cell = ts.Cell.Foreground(p.text)
	ts.Selected = ts.Selected.
		Foreground(p.selectedFg).
		Background(p.selectedBg).
		Bold(false)
	t.table = ts

	return t
}

// other returns the name of the opposite display mode.
func (t theme) other() string {
	if t.name == config.ThemeLight {
		return config.ThemeDark
	}
	return config.ThemeLight
}
