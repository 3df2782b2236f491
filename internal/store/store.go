// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists contact records in a single local SQLite table.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when an operation targets an identifier that is not in the table.
var ErrNotFound = errors.New("contact not found")

// Contact is one persisted contact record.
type Contact struct {
	ID    int64  `yaml:"id,omitempty" json:"id,omitempty"`
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone" json:"phone"`
	Email string `yaml:"email" json:"email"`
}

// FirstName returns the first whitespace-separated token of the name.
func (c Contact) FirstName() string {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns the last whitespace-separated token of the name.
// A single-token name is its own last name.
func (c Contact) LastName() string {
	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// Store is the set of operations the UI and CLI need from the contact table.
type Store interface {
	// Create inserts a record and returns its freshly assigned identifier.
	Create(ctx context.Context, name, phone, email string) (int64, error)
	// All returns every record in insertion order.
	All(ctx context.Context) ([]Contact, error)
	// Last returns the most recently created record.
	Last(ctx context.Context) (Contact, error)
	Get(ctx context.Context, id int64) (Contact, error)
	// Update rewrites the fields of an existing record, keeping its identifier.
	Update(ctx context.Context, id int64, name, phone, email string) error
	Delete(ctx context.Context, id int64) error
	// Clear removes every record and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
	Close() error
}
