// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-plan/testutil"
)

func TestSplitItems(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A, B, C", []string{"A", "B", "C"}},
		{" A ,, B ,", []string{"A", "B"}},
		{"", nil},
		{" , ", nil},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := splitItems(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitItems(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateChecklist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewChecklistHandler(db, newTestPages(t))

	req := testutil.MakeFormRequest("POST", "/checklist", url.Values{
		"title": {"Packing"},
		"date":  {"2025-05-01"},
		"items": {"A, B, C"},
	})
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertRedirect(t, w, "/checklist")

	if n := testutil.CountRows(t, db, "checklist"); n != 1 {
		t.Fatalf("Expected 1 checklist, got %d", n)
	}

	var checklistID int64
	if err := db.QueryRow("SELECT id FROM checklist").Scan(&checklistID); err != nil {
		t.Fatal(err)
	}

	rows, err := db.Query("SELECT checklist_id, item_name, is_checked FROM checklist_item ORDER BY id")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var owner int64
		var name string
		var checked bool
		if err := rows.Scan(&owner, &name, &checked); err != nil {
			t.Fatal(err)
		}
		if owner != checklistID {
			t.Errorf("Item %s linked to checklist %d, want %d", name, owner, checklistID)
		}
		if checked {
			t.Errorf("Item %s should start unchecked", name)
		}
		names = append(names, name)
	}

	if !reflect.DeepEqual(names, []string{"A", "B", "C"}) {
		t.Errorf("Expected items [A B C], got %v", names)
	}
}

func TestCreateChecklist_EmptyItemsAccepted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewChecklistHandler(db, newTestPages(t))

	req := testutil.MakeFormRequest("POST", "/checklist", url.Values{
		"title": {""},
		"date":  {""},
		"items": {" , "},
	})
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertRedirect(t, w, "/checklist")
	if n := testutil.CountRows(t, db, "checklist"); n != 1 {
		t.Errorf("Expected 1 checklist, got %d", n)
	}
	if n := testutil.CountRows(t, db, "checklist_item"); n != 0 {
		t.Errorf("Expected 0 items, got %d", n)
	}
}

func TestCreateChecklist_MissingField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewChecklistHandler(db, newTestPages(t))

	req := testutil.MakeFormRequest("POST", "/checklist", url.Values{
		"title": {"Packing"},
		"date":  {"2025-05-01"},
	})
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if n := testutil.CountRows(t, db, "checklist"); n != 0 {
		t.Errorf("Expected no checklist, got %d", n)
	}
}

func TestListChecklists_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewChecklistHandler(db, newTestPages(t))

	testutil.CreateTestChecklist(t, db, "Older", "2025-01-01")
	testutil.CreateTestChecklist(t, db, "Newer", "2025-06-01")

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/checklist", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if strings.Index(body, "Newer") > strings.Index(body, "Older") {
		t.Errorf("Expected Newer before Older, got:\n%s", body)
	}
}

func TestGetChecklist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewChecklistHandler(db, newTestPages(t))
	mux := http.NewServeMux()
	mux.HandleFunc("GET /checklist/{id}", handler.Get)

	checklistID, _ := testutil.CreateTestChecklist(t, db, "Packing", "2025-05-01", "Passport", "Charger")

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		contains       []string
	}{
		{"existing", fmt.Sprintf("/checklist/%d", checklistID), http.StatusOK, []string{"Packing", "Passport", "Charger"}},
		{"missing", "/checklist/9999", http.StatusNotFound, nil},
		{"non-integer id", "/checklist/abc", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			for _, s := range tt.contains {
				if !strings.Contains(w.Body.String(), s) {
					t.Errorf("Expected page to contain %q", s)
				}
			}
		})
	}
}

func TestToggleItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewChecklistHandler(db, newTestPages(t))
	mux := http.NewServeMux()
	mux.HandleFunc("POST /checklist/{id}/items/{itemID}/toggle", handler.ToggleItem)

	checklistID, itemIDs := testutil.CreateTestChecklist(t, db, "Packing", "2025-05-01", "Passport", "Charger")
	otherID, _ := testutil.CreateTestChecklist(t, db, "Other", "2025-05-02")

	isChecked := func(itemID int64) bool {
		var checked bool
		if err := db.QueryRow("SELECT is_checked FROM checklist_item WHERE id = $1", itemID).Scan(&checked); err != nil {
			t.Fatal(err)
		}
		return checked
	}

	toggle := func(checklistID, itemID int64) *httptest.ResponseRecorder {
		path := fmt.Sprintf("/checklist/%d/items/%d/toggle", checklistID, itemID)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("POST", path, nil))
		return w
	}

	w := toggle(checklistID, itemIDs[0])
	testutil.AssertRedirect(t, w, fmt.Sprintf("/checklist/%d", checklistID))
	if !isChecked(itemIDs[0]) {
		t.Error("Expected item to be checked after first toggle")
	}
	if isChecked(itemIDs[1]) {
		t.Error("Expected other item to stay unchecked")
	}

	toggle(checklistID, itemIDs[0])
	if isChecked(itemIDs[0]) {
		t.Error("Expected item to be unchecked after second toggle")
	}

	// Item exists, but under a different checklist
	w = toggle(otherID, itemIDs[0])
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = toggle(checklistID, 9999)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
