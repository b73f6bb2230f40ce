// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Opening

Open picks the driver from the database type and pings the connection:

	conn, err := db.Open("sqlite", "data.db")

SQLite is served by modernc.org/sqlite (no cgo), PostgreSQL by lib/pq.
All queries in the application use $N placeholders, which both drivers
accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - schedule: date and description
  - checklist: title and date
  - checklist_item: item name and checked flag

# Relationships

	checklist 1──* checklist_item

The foreign key is declared but not enforced with cascading rules, and
SQLite leaves foreign key checks off by default. There are no indexes.
*/
package db
