// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field order in the entry form.
const (
	nameField = iota
	phoneField
	emailField
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name:", "Phone:", "Email:"}

var errNameRequired = errors.New("name is required")

// entry is what the entry dialog produces: the three fields, trimmed.
type entry struct {
	Name  string
	Phone string
	Email string
}

// --- Form Creation ---

// createEntryForm builds the name/phone/email inputs, pre-filled from existing
// when editing.
func createEntryForm(existing *entry) []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Contact Name"
	t.CharLimit = 0 // Stored values may be longer than anything typed here
	t.Width = 40
	inputs[nameField] = t

	t = textinput.New()
	t.Placeholder = "Contact Phone"
	t.CharLimit = 0
	t.Width = 40
	inputs[phoneField] = t

	t = textinput.New()
	t.Placeholder = "Contact Email"
	t.CharLimit = 0
	t.Width = 40
	inputs[emailField] = t

	if existing != nil {
		inputs[nameField].SetValue(existing.Name)
		inputs[phoneField].SetValue(existing.Phone)
		inputs[emailField].SetValue(existing.Email)
	}

	return inputs
}

// --- Form Processing ---

// buildEntryFromForm reads and trims the inputs. Only the name must be present.
func buildEntryFromForm(inputs []textinput.Model) (entry, error) {
	e := entry{
		Name:  strings.TrimSpace(inputs[nameField].Value()),
		Phone: strings.TrimSpace(inputs[phoneField].Value()),
		Email: strings.TrimSpace(inputs[emailField].Value()),
	}
	if e.Name == "" {
		return e, errNameRequired
	}
	return e, nil
}

// focusField moves keyboard focus to inputs[index] and restyles the prompts.
func focusField(inputs []textinput.Model, index int, cursor lipgloss.Style) tea.Cmd {
	for i := range inputs {
		inputs[i].Blur()
		inputs[i].Prompt = "  " // Reset prompt
		inputs[i].TextStyle = lipgloss.NewStyle()
	}
	inputs[index].Prompt = cursor.Render("> ")
	inputs[index].TextStyle = cursor
	return inputs[index].Focus()
}
