// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-plan/models"
)

// sqlitePragmas are appended to SQLite file paths that carry no query string.
const sqlitePragmas = "_pragma=busy_timeout(5000)"

// Open opens and pings a database of the given type.
// For sqlite, url is a file path (or a "file:" URI).
func Open(dbType, url string) (*sql.DB, error) {
	driver, dsn, err := driverFor(dbType, url)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dbType, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", dbType, err)
	}

	return conn, nil
}

func driverFor(dbType, url string) (driver, dsn string, err error) {
	switch dbType {
	case models.DatabaseSQLite:
		if url == "" {
			return "", "", fmt.Errorf("sqlite database path is empty")
		}
		if !strings.Contains(url, "?") {
			url += "?" + sqlitePragmas
		}
		return "sqlite", url, nil
	case models.DatabasePostgres:
		return "postgres", url, nil
	default:
		return "", "", fmt.Errorf("unsupported database type: %q", dbType)
	}
}
