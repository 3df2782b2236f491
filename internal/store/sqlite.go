// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store on top of a SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (or creates) the database at path and brings its schema up to date.
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	// Create directory with appropriate permissions (0750: user rwx, group rx, others ---)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: every statement is serialized through it.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Create persists a new contact.
func (s *SQLiteStore) Create(ctx context.Context, name, phone, email string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO contacts (name, phone, email) VALUES (?, ?, ?)",
		name, phone, email,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new contact id: %w", err)
	}
	return id, nil
}

// All retrieves every contact in insertion order.
func (s *SQLiteStore) All(ctx context.Context) ([]Contact, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, phone, email FROM contacts ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return out, nil
}

// Last retrieves the most recently created contact.
func (s *SQLiteStore) Last(ctx context.Context) (Contact, error) {
	var c Contact
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, phone, email FROM contacts ORDER BY id DESC LIMIT 1",
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return Contact{}, ErrNotFound
	}
	if err != nil {
		return Contact{}, fmt.Errorf("failed to get last contact: %w", err)
	}
	return c, nil
}

// Get retrieves a contact by its ID.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (Contact, error) {
	var c Contact
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, phone, email FROM contacts WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return Contact{}, fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Contact{}, fmt.Errorf("failed to get contact %d: %w", id, err)
	}
	return c, nil
}

// Update rewrites name, phone and email of an existing contact.
func (s *SQLiteStore) Update(ctx context.Context, id int64, name, phone, email string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contacts SET name = ?, phone = ?, email = ? WHERE id = ?",
		name, phone, email, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Delete removes a contact.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// Clear removes all contacts.
func (s *SQLiteStore) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contacts")
	if err != nil {
		return 0, fmt.Errorf("failed to clear contacts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared contacts: %w", err)
	}
	return n, nil
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	return nil
}
