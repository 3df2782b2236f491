// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"slices"
	"strings"

	"contacts-manager/internal/store"

	"github.com/charmbracelet/bubbles/table"
)

// contactList is the table of contacts shown on the main screen. It holds a
// display-only copy of the store's rows; row i of the table is contacts[i].
type contactList struct {
	table    table.Model
	contacts []store.Contact

	// nameColumn is the column whose cell value drives the name sorts.
	nameColumn int

	mode           sortMode
	descending     bool              // Direction of the active mode
	nextDescending map[sortMode]bool // Direction the next Sort(mode) will use
	keepSort       bool              // Re-apply the active sort on Refresh
}

func newContactList(styles table.Styles, keepSort bool) *contactList {
	t := table.New(
		table.WithColumns(contactColumns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-headerHeight-statusHeight-1),
		table.WithStyles(styles),
	)
	return &contactList{
		table:          t,
		nameColumn:     0,
		nextDescending: make(map[sortMode]bool),
		keepSort:       keepSort,
	}
}

// contactColumns splits the available width between Name, Phone and Email.
func contactColumns(width int) []table.Column {
	// Each cell carries one column of padding on either side.
	usable := width - 6
	if usable < 30 {
		usable = 30
	}
	nameW := usable * 35 / 100
	phoneW := usable * 20 / 100
	emailW := usable - nameW - phoneW
	return []table.Column{
		{Title: "Name", Width: nameW},
		{Title: "Phone", Width: phoneW},
		{Title: "Email", Width: emailW},
	}
}

func contactRow(c store.Contact) table.Row {
	return table.Row{c.Name, c.Phone, c.Email}
}

// Load replaces every row with contacts, in the order given, and drops any sort.
func (l *contactList) Load(contacts []store.Contact) {
	l.contacts = slices.Clone(contacts)
	l.mode = sortNone
	l.descending = false
	l.syncRows()
}

// Refresh is Load, plus re-applying the active sort when keepSort is set.
func (l *contactList) Refresh(contacts []store.Contact) {
	mode, desc := l.mode, l.descending
	l.Load(contacts)
	if l.keepSort && mode != sortNone {
		l.apply(mode, desc)
	}
}

// Sort orders the rows by mode. Each mode flips its own direction every time it
// is invoked, starting ascending; the other mode's direction is left alone.
func (l *contactList) Sort(mode sortMode) {
	if mode == sortNone {
		return
	}
	desc := l.nextDescending[mode]
	l.nextDescending[mode] = !desc
	l.apply(mode, desc)
}

func (l *contactList) apply(mode sortMode, desc bool) {
	selected, hasSelection := l.Selected()

	keys := make(map[int64][2]string, len(l.contacts))
	for _, c := range l.contacts {
		keys[c.ID] = sortKey(contactRow(c)[l.nameColumn], mode)
	}
	slices.SortStableFunc(l.contacts, func(a, b store.Contact) int {
		ka, kb := keys[a.ID], keys[b.ID]
		c := strings.Compare(ka[0], kb[0])
		if c == 0 {
			c = strings.Compare(ka[1], kb[1])
		}
		if desc {
			return -c
		}
		return c
	})

	l.mode = mode
	l.descending = desc
	l.syncRows()
	if hasSelection {
		l.Select(selected.ID)
	}
}

// sortKey derives the two-part key for a display name. Names with a single
// token use it for both parts; an empty name sorts as ("", "").
func sortKey(name string, mode sortMode) [2]string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return [2]string{"", ""}
	}
	first, last := parts[0], parts[len(parts)-1]
	if mode == sortLastName {
		return [2]string{last, first}
	}
	return [2]string{first, last}
}

func (l *contactList) syncRows() {
	rows := make([]table.Row, len(l.contacts))
	for i, c := range l.contacts {
		rows[i] = contactRow(c)
	}
	cursor := l.table.Cursor()
	l.table.SetRows(rows)
	l.setCursor(cursor)
}

func (l *contactList) setCursor(n int) {
	if n >= len(l.contacts) {
		n = len(l.contacts) - 1
	}
	if n < 0 {
		n = 0
	}
	l.table.SetCursor(n)
}

// Contacts returns the rows in display order.
func (l *contactList) Contacts() []store.Contact {
	return l.contacts
}

func (l *contactList) Len() int {
	return len(l.contacts)
}

// Selected returns the contact under the cursor.
func (l *contactList) Selected() (store.Contact, bool) {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.contacts) {
		return store.Contact{}, false
	}
	return l.contacts[i], true
}

// Select moves the cursor to the row holding id. Unknown ids leave it in place.
func (l *contactList) Select(id int64) bool {
	for i, c := range l.contacts {
		if c.ID == id {
			l.table.SetCursor(i)
			return true
		}
	}
	return false
}

func (l *contactList) MoveUp()     { l.table.MoveUp(1) }
func (l *contactList) MoveDown()   { l.table.MoveDown(1) }
func (l *contactList) GotoTop()    { l.table.GotoTop() }
func (l *contactList) GotoBottom() { l.table.GotoBottom() }

// SetSize fits the table into width x height cells, header row included.
func (l *contactList) SetSize(width, height int) {
	if height < 3 {
		height = 3
	}
	l.table.SetColumns(contactColumns(width))
	l.table.SetWidth(width)
	l.table.SetHeight(height)
}

func (l *contactList) SetStyles(s table.Styles) {
	l.table.SetStyles(s)
}

// SortLabel describes the active ordering for the header line.
func (l *contactList) SortLabel() string {
	if l.mode == sortNone {
		return l.mode.String()
	}
	dir := "ascending"
	if l.descending {
		dir = "descending"
	}
	return l.mode.String() + ", " + dir
}

func (l *contactList) View() string {
	return l.table.View()
}
