// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/views"
)

type ChecklistHandler struct {
	db    *sql.DB
	pages *views.Renderer
}

func NewChecklistHandler(db *sql.DB, pages *views.Renderer) *ChecklistHandler {
	return &ChecklistHandler{db: db, pages: pages}
}

// List handles GET /checklist
func (h *ChecklistHandler) List(w http.ResponseWriter, r *http.Request) {
	checklists, err := listChecklists(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list checklists", "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.pages.Render(w, http.StatusOK, views.Checklist, models.ChecklistPage{Checklists: checklists})
}

// Create handles POST /checklist
func (h *ChecklistHandler) Create(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.FormValues(r, models.FieldTitle, models.FieldDate, models.FieldItems)
	if err != nil {
		middleware.PageError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := splitItems(values[models.FieldItems])

	id, err := insertChecklist(r.Context(), h.db, values[models.FieldTitle], values[models.FieldDate], items)
	if err != nil {
		slog.Error("failed to insert checklist", "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Failed to create checklist")
		return
	}

	slog.Info("checklist created", "checklist_id", id, "items", len(items))

	http.Redirect(w, r, "/checklist", http.StatusFound)
}

// Get handles GET /checklist/{id}
func (h *ChecklistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		middleware.PageError(w, http.StatusBadRequest, err.Error())
		return
	}

	checklist, err := getChecklist(r.Context(), h.db, id)
	if errors.Is(err, ErrNotFound) {
		middleware.PageError(w, http.StatusNotFound, "Checklist not found")
		return
	}
	if err != nil {
		slog.Error("failed to query checklist", "checklist_id", id, "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.pages.Render(w, http.StatusOK, views.ChecklistDetail, models.ChecklistDetailPage{
		Checklist: checklist.Checklist,
		Items:     checklist.Items,
	})
}

// ToggleItem handles POST /checklist/{id}/items/{itemID}/toggle
func (h *ChecklistHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	checklistID, err := pathID(r, "id")
	if err != nil {
		middleware.PageError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		middleware.PageError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = toggleItem(r.Context(), h.db, checklistID, itemID)
	if errors.Is(err, ErrNotFound) {
		middleware.PageError(w, http.StatusNotFound, "Checklist item not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle item", "checklist_id", checklistID, "item_id", itemID, "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("checklist item toggled", "checklist_id", checklistID, "item_id", itemID)

	http.Redirect(w, r, fmt.Sprintf("/checklist/%d", checklistID), http.StatusFound)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return id, nil
}
