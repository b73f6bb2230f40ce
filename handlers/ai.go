// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-plan/intent"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/views"
)

// Messages shown on the AI page
const (
	msgNoSchedules     = "No schedules found."
	msgSchedulesHeader = "Schedules:"
	msgMissingFields   = "Missing date or description. Please try again."
	msgScheduleAdded   = "Schedule added: %s - %s"
	msgUnknownIntent   = "Cannot handle intent yet: %s"
)

type AIHandler struct {
	db     *sql.DB
	pages  *views.Renderer
	parser *intent.Parser
}

func NewAIHandler(db *sql.DB, pages *views.Renderer, parser *intent.Parser) *AIHandler {
	return &AIHandler{db: db, pages: pages, parser: parser}
}

// Form handles GET /ai
func (h *AIHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusOK, views.AIInterface, models.AIPage{})
}

// Submit handles POST /ai
func (h *AIHandler) Submit(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.FormValues(r, models.FieldPrompt)
	if err != nil {
		middleware.PageError(w, http.StatusBadRequest, err.Error())
		return
	}
	prompt := values[models.FieldPrompt]

	parsed, err := h.parser.Parse(r.Context(), prompt)
	if err != nil {
		slog.Error("failed to parse command", "error", err)
		middleware.PageError(w, http.StatusBadGateway, "Language model request failed")
		return
	}

	if !parsed.Recognized() {
		slog.Warn("unrecognized intent", "intent", parsed.Intent, "reply", parsed.Raw)
	}

	result, err := h.execute(r.Context(), parsed)
	if err != nil {
		slog.Error("failed to execute intent", "intent", parsed.Intent, "error", err)
		middleware.PageError(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("ai command handled", "intent", parsed.Intent)

	h.pages.Render(w, http.StatusOK, views.AIInterface, models.AIPage{
		UserInput: prompt,
		Result:    result,
		Intent:    parsed.Intent,
	})
}

// execute runs a parsed intent against the database and describes the
// outcome in one human-readable string
func (h *AIHandler) execute(ctx context.Context, parsed intent.Result) (string, error) {
	switch parsed.Intent {
	case intent.QuerySchedule:
		schedules, err := listSchedules(ctx, h.db, parsed.StartDate, parsed.EndDate)
		if err != nil {
			return "", err
		}
		return formatSchedules(schedules), nil

	case intent.AddSchedule:
		if parsed.Date == "" || parsed.Description == "" {
			return msgMissingFields, nil
		}
		id, err := insertSchedule(ctx, h.db, parsed.Date, parsed.Description)
		if err != nil {
			return "", err
		}
		slog.Info("schedule created", "schedule_id", id, "date", parsed.Date, "source", "ai")
		return fmt.Sprintf(msgScheduleAdded, parsed.Date, parsed.Description), nil

	default:
		name := parsed.Intent
		if name == "" {
			name = intent.None
		}
		return fmt.Sprintf(msgUnknownIntent, name), nil
	}
}

func formatSchedules(schedules []models.Schedule) string {
	if len(schedules) == 0 {
		return msgNoSchedules
	}

	lines := make([]string, 0, len(schedules)+1)
	lines = append(lines, msgSchedulesHeader)
	for _, s := range schedules {
		lines = append(lines, s.Date+" - "+s.Description)
	}
	return strings.Join(lines, "\n")
}
