// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-plan/calendar"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/views"
)

type ScheduleHandler struct {
	db    *sql.DB
	pages *views.Renderer
}

func NewScheduleHandler(db *sql.DB, pages *views.Renderer) *ScheduleHandler {
	return &ScheduleHandler{db: db, pages: pages}
}

// List handles GET /schedule
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := listSchedules(r.Context(), h.db, "", "")
	if err != nil {
		slog.Error("failed to list schedules", "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.pages.Render(w, http.StatusOK, views.Schedule, models.SchedulePage{Schedules: schedules})
}

// Create handles POST /schedule
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.FormValues(r, models.FieldDate, models.FieldDescription)
	if err != nil {
		middleware.PageError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := insertSchedule(r.Context(), h.db, values[models.FieldDate], values[models.FieldDescription])
	if err != nil {
		slog.Error("failed to insert schedule", "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	slog.Info("schedule created", "schedule_id", id, "date", values[models.FieldDate])

	http.Redirect(w, r, "/schedule", http.StatusFound)
}

// ListJSON handles GET /api/schedule?start=&end=
func (h *ScheduleHandler) ListJSON(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if (start == "") != (end == "") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start and end must be given together")
		return
	}

	schedules, err := listSchedules(r.Context(), h.db, start, end)
	if err != nil {
		slog.Error("failed to list schedules", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScheduleListResponse{
		Schedules: schedules,
		Start:     start,
		End:       end,
	})
}

// ExportICS handles GET /schedule.ics
func (h *ScheduleHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	schedules, err := listSchedules(r.Context(), h.db, "", "")
	if err != nil {
		slog.Error("failed to list schedules", "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(calendar.Export(schedules, time.Now())))
}
