// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quickly-plan/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema, err := schemaFor(dbType)
	if err != nil {
		return err
	}

	_, err = db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func schemaFor(dbType string) (string, error) {
	switch dbType {
	case models.DatabaseSQLite:
		return sqliteSchema, nil
	case models.DatabasePostgres:
		return postgresSchema, nil
	default:
		return "", fmt.Errorf("unsupported database type: %q", dbType)
	}
}

const sqliteSchema = `
-- Schedules
CREATE TABLE IF NOT EXISTS schedule (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT,
    description TEXT
);

-- Checklists
CREATE TABLE IF NOT EXISTS checklist (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT,
    date TEXT
);

-- Checklist items
CREATE TABLE IF NOT EXISTS checklist_item (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    checklist_id INTEGER,
    item_name TEXT,
    is_checked INTEGER DEFAULT 0,
    FOREIGN KEY(checklist_id) REFERENCES checklist(id)
);
`

const postgresSchema = `
-- Schedules
CREATE TABLE IF NOT EXISTS schedule (
    id SERIAL PRIMARY KEY,
    date TEXT,
    description TEXT
);

-- Checklists
CREATE TABLE IF NOT EXISTS checklist (
    id SERIAL PRIMARY KEY,
    title TEXT,
    date TEXT
);

-- Checklist items
CREATE TABLE IF NOT EXISTS checklist_item (
    id SERIAL PRIMARY KEY,
    checklist_id INTEGER REFERENCES checklist(id),
    item_name TEXT,
    is_checked BOOLEAN DEFAULT FALSE
);
`
