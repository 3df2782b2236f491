// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file holds the modal dialogs. A dialog owns the keyboard while it is
// open and hands its result to a callback supplied by whoever opened it. The
// callback runs once, after the model has closed the dialog.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dialog is a modal prompt layered over the contact list.
type dialog interface {
	Init() tea.Cmd
	// Update handles a key press. A non-nil resolve means the dialog is done:
	// the caller closes it and then calls resolve to run the continuation.
	Update(msg tea.KeyMsg) (resolve func() tea.Cmd, cmd tea.Cmd)
	View() string
}

// --- Confirmation ---

type confirmDialog struct {
	message  string
	yes      bool // Focused button; starts on No
	resolved bool
	onAnswer func(bool) tea.Cmd
	keys     KeyMap
	theme    theme
}

func newConfirmDialog(message string, keys KeyMap, t theme, onAnswer func(bool) tea.Cmd) *confirmDialog {
	return &confirmDialog{message: message, onAnswer: onAnswer, keys: keys, theme: t}
}

func (d *confirmDialog) Init() tea.Cmd { return nil }

func (d *confirmDialog) Update(msg tea.KeyMsg) (func() tea.Cmd, tea.Cmd) {
	if d.resolved {
		return nil, nil
	}
	switch {
	case key.Matches(msg, d.keys.Yes):
		return d.answer(true), nil
	case key.Matches(msg, d.keys.No), key.Matches(msg, d.keys.Esc):
		return d.answer(false), nil
	case key.Matches(msg, d.keys.Enter):
		return d.answer(d.yes), nil
	case key.Matches(msg, d.keys.Left), key.Matches(msg, d.keys.Right):
		d.yes = !d.yes
	}
	return nil, nil
}

func (d *confirmDialog) answer(yes bool) func() tea.Cmd {
	d.resolved = true
	return func() tea.Cmd {
		if d.onAnswer == nil {
			return nil
		}
		return d.onAnswer(yes)
	}
}

func (d *confirmDialog) View() string {
	yesStyle, noStyle := d.theme.buttonStyle, d.theme.activeNoStyle
	if d.yes {
		yesStyle, noStyle = d.theme.activeYesStyle, d.theme.buttonStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		yesStyle.Render("Yes"),
		noStyle.Render("No"),
	)
	help := d.theme.statusStyle.Render(fmt.Sprintf("%s/%s: answer | %s: switch | %s: %s",
		d.keys.Yes.Help().Key, d.keys.No.Help().Key,
		d.keys.Left.Help().Key+"/"+d.keys.Right.Help().Key,
		d.keys.Esc.Help().Key, d.keys.Esc.Help().Desc))

	body := lipgloss.JoinVertical(lipgloss.Left, d.message, "", buttons, "", help)
	return d.theme.dialogStyle.Render(body)
}

// --- Entry form ---

type entryDialog struct {
	title    string
	inputs   []textinput.Model
	focus    int
	err      error
	resolved bool
	onSubmit func(e entry, ok bool) tea.Cmd
	keys     KeyMap
	theme    theme
}

// newEntryDialog opens the name/phone/email form. existing pre-fills it for an
// edit; nil starts blank. onSubmit receives the trimmed fields and ok=true, or
// ok=false when the form was cancelled.
func newEntryDialog(title string, existing *entry, keys KeyMap, t theme, onSubmit func(entry, bool) tea.Cmd) *entryDialog {
	return &entryDialog{
		title:    title,
		inputs:   createEntryForm(existing),
		onSubmit: onSubmit,
		keys:     keys,
		theme:    t,
	}
}

func (d *entryDialog) Init() tea.Cmd {
	return focusField(d.inputs, d.focus, d.theme.cursorStyle)
}

func (d *entryDialog) Update(msg tea.KeyMsg) (func() tea.Cmd, tea.Cmd) {
	if d.resolved {
		return nil, nil
	}
	switch {
	case key.Matches(msg, d.keys.Esc):
		return d.finish(entry{}, false), nil
	case key.Matches(msg, d.keys.Submit):
		return d.submit()
	case key.Matches(msg, d.keys.Enter):
		if d.focus == len(d.inputs)-1 {
			return d.submit()
		}
		return nil, d.moveFocus(1)
	case key.Matches(msg, d.keys.NextField):
		return nil, d.moveFocus(1)
	case key.Matches(msg, d.keys.PrevField):
		return nil, d.moveFocus(-1)
	}

	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return nil, cmd
}

func (d *entryDialog) moveFocus(delta int) tea.Cmd {
	d.focus = (d.focus + delta + len(d.inputs)) % len(d.inputs)
	d.err = nil // Clear error on navigation
	return focusField(d.inputs, d.focus, d.theme.cursorStyle)
}

func (d *entryDialog) submit() (func() tea.Cmd, tea.Cmd) {
	e, err := buildEntryFromForm(d.inputs)
	if err != nil {
		d.err = err
		d.focus = nameField
		return nil, focusField(d.inputs, d.focus, d.theme.cursorStyle)
	}
	return d.finish(e, true), nil
}

func (d *entryDialog) finish(e entry, ok bool) func() tea.Cmd {
	d.resolved = true
	return func() tea.Cmd {
		if d.onSubmit == nil {
			return nil
		}
		return d.onSubmit(e, ok)
	}
}

func (d *entryDialog) View() string {
	b := strings.Builder{}
	b.WriteString(d.theme.titleStyle.Render(d.title) + "\n\n")
	for i := range d.inputs {
		b.WriteString(d.theme.labelStyle.Render(fieldLabels[i]) + d.inputs[i].View() + "\n")
	}
	if d.err != nil {
		b.WriteString("\n" + d.theme.errorStyle.Render(fmt.Sprintf("Error: %v", d.err)) + "\n")
	}

	help := strings.Builder{}
	help.WriteString(d.keys.NextField.Help().Key + "/" + d.keys.PrevField.Help().Key + ": navigate | ")
	help.WriteString(d.keys.Enter.Help().Key + "/" + d.keys.Submit.Help().Key + ": save | ")
	help.WriteString(d.keys.Esc.Help().Key + ": " + d.keys.Esc.Help().Desc)
	b.WriteString("\n" + d.theme.statusStyle.Render(help.String()))

	return d.theme.dialogStyle.Render(b.String())
}
