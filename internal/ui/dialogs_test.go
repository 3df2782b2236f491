// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"
	"testing"

	"contacts-manager/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	leftKey     = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlSKey    = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlUKey    = tea.KeyMsg{Type: tea.KeyCtrlU} // textinput: delete to line start
)

// typeText feeds s to d one rune at a time.
func typeText(d dialog, s string) {
	for _, r := range s {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// answerRecorder counts continuation calls and keeps the last answer.
type answerRecorder struct {
	calls  int
	answer bool
}

func (r *answerRecorder) onAnswer(yes bool) tea.Cmd {
	r.calls++
	r.answer = yes
	return nil
}

func newTestConfirm(r *answerRecorder) *confirmDialog {
	return newConfirmDialog("Do you want to quit?", DefaultKeyMap, newTheme(config.ThemeDark), r.onAnswer)
}

func TestConfirmDialog_Answers(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{name: "y answers yes", keys: []tea.KeyMsg{runeKey("y")}, want: true},
		{name: "n answers no", keys: []tea.KeyMsg{runeKey("n")}, want: false},
		{name: "esc answers no", keys: []tea.KeyMsg{escKey}, want: false},
		{name: "enter defaults to no", keys: []tea.KeyMsg{enterKey}, want: false},
		{name: "tab then enter picks yes", keys: []tea.KeyMsg{tabKey, enterKey}, want: true},
		{name: "left twice returns to no", keys: []tea.KeyMsg{leftKey, leftKey, enterKey}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &answerRecorder{}
			d := newTestConfirm(r)

			var resolve func() tea.Cmd
			for i, k := range tt.keys {
				resolve, _ = d.Update(k)
				if i < len(tt.keys)-1 {
					require.Nil(t, resolve, "dialog resolved early")
				}
			}
			require.NotNil(t, resolve)
			assert.Equal(t, 0, r.calls, "continuation runs only when the caller invokes it")

			resolve()
			assert.Equal(t, 1, r.calls)
			assert.Equal(t, tt.want, r.answer)
		})
	}
}

func TestConfirmDialog_ResolvesOnce(t *testing.T) {
	r := &answerRecorder{}
	d := newTestConfirm(r)

	resolve, _ := d.Update(runeKey("y"))
	require.NotNil(t, resolve)
	resolve()

	again, _ := d.Update(runeKey("n"))
	assert.Nil(t, again)
	assert.Equal(t, 1, r.calls)
	assert.True(t, r.answer)
}

func TestConfirmDialog_IgnoresOtherKeys(t *testing.T) {
	d := newTestConfirm(&answerRecorder{})

	resolve, cmd := d.Update(runeKey("x"))
	assert.Nil(t, resolve)
	assert.Nil(t, cmd)
	assert.Contains(t, d.View(), "Do you want to quit?")
}

type entryRecorder struct {
	calls int
	entry entry
	ok    bool
}

func (r *entryRecorder) onSubmit(e entry, ok bool) tea.Cmd {
	r.calls++
	r.entry = e
	r.ok = ok
	return nil
}

func newTestEntryDialog(existing *entry, r *entryRecorder) *entryDialog {
	d := newEntryDialog("Add Contact", existing, DefaultKeyMap, newTheme(config.ThemeDark), r.onSubmit)
	d.Init()
	return d
}

func TestEntryDialog_SubmitTrimsFields(t *testing.T) {
	r := &entryRecorder{}
	d := newTestEntryDialog(nil, r)

	typeText(d, "  Ann Zephyr ")
	d.Update(tabKey)
	typeText(d, " 555-0100")
	d.Update(enterKey) // Enter on a middle field moves on
	typeText(d, "ann@example.com  ")

	resolve, _ := d.Update(enterKey)
	require.NotNil(t, resolve)
	resolve()

	assert.Equal(t, 1, r.calls)
	assert.True(t, r.ok)
	assert.Equal(t, entry{Name: "Ann Zephyr", Phone: "555-0100", Email: "ann@example.com"}, r.entry)
}

func TestEntryDialog_PrefillAndCtrlS(t *testing.T) {
	r := &entryRecorder{}
	d := newTestEntryDialog(&entry{Name: "Bob Smith", Phone: "1", Email: "bob@example.com"}, r)

	assert.Equal(t, "Bob Smith", d.inputs[nameField].Value())
	assert.Equal(t, "bob@example.com", d.inputs[emailField].Value())

	d.Update(tabKey)
	d.Update(ctrlUKey)
	typeText(d, "2")

	resolve, _ := d.Update(ctrlSKey)
	require.NotNil(t, resolve)
	resolve()
	assert.Equal(t, entry{Name: "Bob Smith", Phone: "2", Email: "bob@example.com"}, r.entry)
}

func TestEntryDialog_CancelDiscardsInput(t *testing.T) {
	r := &entryRecorder{}
	d := newTestEntryDialog(nil, r)

	typeText(d, "Someone")
	resolve, _ := d.Update(escKey)
	require.NotNil(t, resolve)
	resolve()

	assert.Equal(t, 1, r.calls)
	assert.False(t, r.ok)
	assert.Equal(t, entry{}, r.entry)

	again, _ := d.Update(enterKey)
	assert.Nil(t, again)
	assert.Equal(t, 1, r.calls)
}

func TestEntryDialog_EmptyNameStaysOpen(t *testing.T) {
	r := &entryRecorder{}
	d := newTestEntryDialog(nil, r)

	typeText(d, "   ")
	d.Update(tabKey)
	typeText(d, "555")

	resolve, _ := d.Update(ctrlSKey)
	assert.Nil(t, resolve)
	assert.Equal(t, 0, r.calls)
	assert.ErrorIs(t, d.err, errNameRequired)
	assert.Equal(t, nameField, d.focus, "focus returns to the name field")
	assert.Contains(t, d.View(), "name is required")

	typeText(d, "Cy")
	resolve, _ = d.Update(ctrlSKey)
	require.NotNil(t, resolve)
	resolve()
	assert.Equal(t, "Cy", r.entry.Name)
	assert.Equal(t, "555", r.entry.Phone)
}

func TestEntryDialog_FocusWraps(t *testing.T) {
	d := newTestEntryDialog(nil, &entryRecorder{})

	d.Update(shiftTabKey)
	assert.Equal(t, emailField, d.focus)
	d.Update(tabKey)
	assert.Equal(t, nameField, d.focus)
}

func TestEntryDialog_PrefillSubmittedUnchanged(t *testing.T) {
	r := &entryRecorder{}
	existing := entry{
		Name:  strings.Repeat("x", 300),
		Phone: strings.Repeat("5", 80),
		Email: strings.Repeat("e", 250) + "@example.com",
	}
	d := newTestEntryDialog(&existing, r)

	resolve, _ := d.Update(ctrlSKey)
	require.NotNil(t, resolve)
	resolve()

	assert.True(t, r.ok)
	assert.Equal(t, existing, r.entry)
}
