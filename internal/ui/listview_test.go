// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"testing"

	"contacts-manager/internal/config"
	"contacts-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(keepSort bool, names ...string) *contactList {
	l := newContactList(newTheme(config.ThemeDark).table, keepSort)
	l.Load(contactsNamed(names...))
	return l
}

func contactsNamed(names ...string) []store.Contact {
	contacts := make([]store.Contact, len(names))
	for i, n := range names {
		contacts[i] = store.Contact{ID: int64(i + 1), Name: n}
	}
	return contacts
}

func listNames(l *contactList) []string {
	var names []string
	for _, c := range l.Contacts() {
		names = append(names, c.Name)
	}
	return names
}

// tableNames reads the Name column back out of the rendered table rows.
func tableNames(l *contactList) []string {
	var names []string
	for _, r := range l.table.Rows() {
		names = append(names, r[l.nameColumn])
	}
	return names
}

func TestContactList_LoadKeepsGivenOrder(t *testing.T) {
	l := newTestList(false, "Bob Smith", "Ann Zephyr", "Cy Young")

	assert.Equal(t, []string{"Bob Smith", "Ann Zephyr", "Cy Young"}, listNames(l))
	assert.Equal(t, listNames(l), tableNames(l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "insertion order", l.SortLabel())
}

func TestContactList_SortTogglesPerMode(t *testing.T) {
	l := newTestList(false, "Bob Smith", "Ann Zephyr")

	l.Sort(sortFirstName)
	assert.Equal(t, []string{"Ann Zephyr", "Bob Smith"}, listNames(l))
	assert.Equal(t, "first name, ascending", l.SortLabel())

	l.Sort(sortLastName)
	assert.Equal(t, []string{"Bob Smith", "Ann Zephyr"}, listNames(l), "first last-name sort is ascending")
	assert.Equal(t, "last name, ascending", l.SortLabel())

	l.Sort(sortFirstName)
	assert.Equal(t, []string{"Bob Smith", "Ann Zephyr"}, listNames(l), "second first-name sort is descending")
	assert.Equal(t, "first name, descending", l.SortLabel())

	l.Sort(sortFirstName)
	assert.Equal(t, []string{"Ann Zephyr", "Bob Smith"}, listNames(l))

	l.Sort(sortLastName)
	assert.Equal(t, []string{"Ann Zephyr", "Bob Smith"}, listNames(l), "second last-name sort is descending")
	assert.Equal(t, listNames(l), tableNames(l))
}

func TestContactList_SortKeys(t *testing.T) {
	tests := []struct {
		name  string
		mode  sortMode
		input []string
		want  []string
	}{
		{
			name:  "first name breaks ties on last token",
			mode:  sortFirstName,
			input: []string{"Ann Young", "Ann Mary Baker", "Ann Lee"},
			want:  []string{"Ann Mary Baker", "Ann Lee", "Ann Young"},
		},
		{
			name:  "last name breaks ties on first token",
			mode:  sortLastName,
			input: []string{"Zoe Lee", "Adam Lee", "Ben Adams"},
			want:  []string{"Ben Adams", "Adam Lee", "Zoe Lee"},
		},
		{
			name:  "single token serves as both parts",
			mode:  sortLastName,
			input: []string{"Madonna", "Ann Lee"},
			want:  []string{"Ann Lee", "Madonna"},
		},
		{
			name:  "empty name sorts first",
			mode:  sortFirstName,
			input: []string{"Bob", "", "Ann"},
			want:  []string{"", "Ann", "Bob"},
		},
		{
			name:  "extra whitespace is ignored",
			mode:  sortFirstName,
			input: []string{"  Cy   Young ", "Bo Diddley"},
			want:  []string{"Bo Diddley", "  Cy   Young "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList(false, tt.input...)
			l.Sort(tt.mode)
			assert.Equal(t, tt.want, listNames(l))
		})
	}
}

func TestContactList_SortIsStable(t *testing.T) {
	l := newTestList(false, "Cher", "Ann Lee", "Cher")
	ids := func() []int64 {
		var out []int64
		for _, c := range l.Contacts() {
			out = append(out, c.ID)
		}
		return out
	}

	l.Sort(sortFirstName)
	assert.Equal(t, []int64{2, 1, 3}, ids())

	l.Sort(sortFirstName)
	assert.Equal(t, []int64{1, 3, 2}, ids(), "equal keys keep their relative order when descending")
}

func TestContactList_LoadDropsSortButKeepsToggles(t *testing.T) {
	names := []string{"Bob Smith", "Ann Zephyr"}
	l := newTestList(false, names...)

	l.Sort(sortFirstName)
	l.Load(contactsNamed(names...))
	assert.Equal(t, names, listNames(l))
	assert.Equal(t, "insertion order", l.SortLabel())

	l.Sort(sortFirstName)
	assert.Equal(t, []string{"Bob Smith", "Ann Zephyr"}, listNames(l), "toggle state survives a reload")
	assert.Equal(t, "first name, descending", l.SortLabel())
}

func TestContactList_Refresh(t *testing.T) {
	names := []string{"Bob Smith", "Ann Zephyr", "Cy Young"}

	t.Run("discards sort by default", func(t *testing.T) {
		l := newTestList(false, names...)
		l.Sort(sortFirstName)
		l.Refresh(contactsNamed(names...))
		assert.Equal(t, names, listNames(l))
	})

	t.Run("keeps sort when configured", func(t *testing.T) {
		l := newTestList(true, names...)
		l.Sort(sortFirstName)
		l.Sort(sortFirstName)
		l.Refresh(contactsNamed(names...))
		assert.Equal(t, []string{"Cy Young", "Bob Smith", "Ann Zephyr"}, listNames(l))
		assert.Equal(t, "first name, descending", l.SortLabel())

		l.Sort(sortFirstName)
		assert.Equal(t, []string{"Ann Zephyr", "Bob Smith", "Cy Young"}, listNames(l), "refresh does not consume a toggle")
	})
}

func TestContactList_SelectionFollowsContact(t *testing.T) {
	l := newTestList(false, "Bob Smith", "Ann Zephyr", "Cy Young")

	require.True(t, l.Select(1))
	l.Sort(sortFirstName)

	c, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "Bob Smith", c.Name)

	assert.False(t, l.Select(42))
	c, _ = l.Selected()
	assert.Equal(t, "Bob Smith", c.Name, "unknown id leaves the cursor alone")
}

func TestContactList_Navigation(t *testing.T) {
	l := newTestList(false, "A", "B", "C")

	l.GotoBottom()
	c, _ := l.Selected()
	assert.Equal(t, "C", c.Name)

	l.MoveDown()
	c, _ = l.Selected()
	assert.Equal(t, "C", c.Name, "cursor stays on the last row")

	l.MoveUp()
	c, _ = l.Selected()
	assert.Equal(t, "B", c.Name)

	l.GotoTop()
	c, _ = l.Selected()
	assert.Equal(t, "A", c.Name)
}

func TestContactList_CursorClampsAfterShrink(t *testing.T) {
	l := newTestList(false, "A", "B", "C")
	l.GotoBottom()

	l.Load(contactsNamed("A"))
	c, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "A", c.Name)
}

func TestContactList_Empty(t *testing.T) {
	l := newTestList(false)

	_, ok := l.Selected()
	assert.False(t, ok)
	assert.False(t, l.Select(1))

	l.Sort(sortLastName)
	assert.Empty(t, l.Contacts())
}
