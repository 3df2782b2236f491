// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateLoadingContacts state = iota
	stateContactList
)

// sortMode is the ordering currently applied to the contact list.
type sortMode int

const (
	sortNone sortMode = iota
	sortFirstName
	sortLastName
)

func (s sortMode) String() string {
	switch s {
	case sortFirstName:
		return "first name"
	case sortLastName:
		return "last name"
	default:
		return "insertion order"
	}
}

const (
	headerHeight = 2 // Title line plus the blank line under it.
	statusHeight = 1

	defaultWidth  = 80
	defaultHeight = 24
)
