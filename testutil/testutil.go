// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/db"
	"github.com/danielhkuo/quickly-plan/llm"
	"github.com/danielhkuo/quickly-plan/models"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(models.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, models.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupPostgresDB connects to the PostgreSQL server in DATABASE_URL and
// creates the schema inside a throwaway search_path schema that is dropped
// when the test ends. The test is skipped unless DATABASE_URL is a
// postgres:// or postgresql:// URL.
func SetupPostgresDB(t *testing.T) *sql.DB {
	t.Helper()

	base := os.Getenv("DATABASE_URL")
	if !strings.HasPrefix(base, "postgres://") && !strings.HasPrefix(base, "postgresql://") {
		t.Skip("DATABASE_URL is not a PostgreSQL URL")
	}

	admin, err := db.Open(models.DatabasePostgres, base)
	if err != nil {
		t.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	t.Cleanup(func() { admin.Close() })

	schema := "quickly_plan_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := admin.Exec("CREATE SCHEMA " + schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	t.Cleanup(func() {
		if _, err := admin.Exec("DROP SCHEMA " + schema + " CASCADE"); err != nil {
			t.Logf("Failed to drop test schema %s: %v", schema, err)
		}
	})

	u, err := url.Parse(base)
	if err != nil {
		t.Fatalf("Invalid DATABASE_URL: %v", err)
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()

	conn, err := db.Open(models.DatabasePostgres, u.String())
	if err != nil {
		t.Fatalf("Failed to open test schema: %v", err)
	}
	// Registered after the drop, so it runs first
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, models.DatabasePostgres); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	cfg := cliparse.Defaults()
	cfg.Port = 8000
	cfg.DatabaseURL = ":memory:"
	cfg.BasicAuthUser = "planner"
	cfg.BasicAuthPass = "test-password"
	return cfg
}

// CreateTestSchedule inserts a schedule and returns its ID
func CreateTestSchedule(t *testing.T, conn *sql.DB, date, description string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO schedule (date, description)
		VALUES ($1, $2)
		RETURNING id
	`, date, description).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test schedule: %v", err)
	}

	return id
}

// CreateTestChecklist inserts a checklist with the given items and returns
// the checklist ID and the item IDs in order
func CreateTestChecklist(t *testing.T, conn *sql.DB, title, date string, items ...string) (int64, []int64) {
	t.Helper()

	var checklistID int64
	err := conn.QueryRow(`
		INSERT INTO checklist (title, date)
		VALUES ($1, $2)
		RETURNING id
	`, title, date).Scan(&checklistID)
	if err != nil {
		t.Fatalf("Failed to create test checklist: %v", err)
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		var itemID int64
		err := conn.QueryRow(`
			INSERT INTO checklist_item (checklist_id, item_name)
			VALUES ($1, $2)
			RETURNING id
		`, checklistID, item).Scan(&itemID)
		if err != nil {
			t.Fatalf("Failed to create test checklist item: %v", err)
		}
		itemIDs = append(itemIDs, itemID)
	}

	return checklistID, itemIDs
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// FakeLLM answers every chat with a fixed reply and records the prompts it saw
type FakeLLM struct {
	Reply string
	Err   error

	mu       sync.Mutex
	Requests []string
}

func (f *FakeLLM) Chat(ctx context.Context, systemPrompt string, messages []llm.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, m := range messages {
		f.Requests = append(f.Requests, m.Content)
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
