// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of the portal databases:
// the profiles and professional_records tables of the self-hosted
// PostgreSQL backend, and the sessions table of the sqlite session store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed sessions/*.sql
var embedSessionMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies the PostgreSQL migrations to db.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateSessions applies the sqlite session store migrations to db.
func MigrateSessions(db *sql.DB) error {
	return up(db, embedSessionMigrations, "sqlite3", "sessions")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
