// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema for every supported driver and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned for a driver with no embedded migrations.
var ErrUnsupportedDriver = errors.New("no migrations for driver")

// dialects maps a database/sql driver name to its goose dialect. The
// migrations of each driver live in the directory named after it.
var dialects = map[string]string{
	"postgres": "postgres",
	"mysql":    "mysql",
	"sqlite3":  "sqlite3",
}

// Migrate applies all pending migrations for driver ("postgres", "mysql" or
// "sqlite3") to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, driver); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
