// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the Bubble Tea
// Model-View-Update architecture. Commands send them back to Update once store or
// system work has finished.

package ui

import "contacts-manager/internal/store"

// contactsLoadedMsg carries a full reload of the contact table. Every store
// mutation finishes with one of these.
type contactsLoadedMsg struct {
	contacts []store.Contact
	focusID  int64  // Row to put the cursor on; 0 keeps the current position
	status   string // Shown in the status bar when non-empty
	warn     bool   // Render status as a warning
	err      error  // Store failure; ends the session
}

type themeSavedMsg struct {
	theme string
	err   error
}

type clipboardMsg struct {
	what string
	err  error
}
