// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-plan/handlers"
	"github.com/danielhkuo/quickly-plan/intent"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/views"
)

func NewRouter(db *sql.DB, pages *views.Renderer, parser *intent.Parser) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(pages)
	scheduleHandler := handlers.NewScheduleHandler(db, pages)
	checklistHandler := handlers.NewChecklistHandler(db, pages)
	aiHandler := handlers.NewAIHandler(db, pages, parser)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Landing page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))

	// Schedules
	mux.HandleFunc("GET /schedule", middleware.WithLogging(scheduleHandler.List))
	mux.HandleFunc("POST /schedule", middleware.WithLogging(scheduleHandler.Create))
	mux.HandleFunc("GET /schedule.ics", middleware.WithLogging(scheduleHandler.ExportICS))
	mux.HandleFunc("GET /api/schedule", middleware.WithLogging(scheduleHandler.ListJSON))

	// Checklists
	mux.HandleFunc("GET /checklist", middleware.WithLogging(checklistHandler.List))
	mux.HandleFunc("POST /checklist", middleware.WithLogging(checklistHandler.Create))
	mux.HandleFunc("GET /checklist/{id}", middleware.WithLogging(checklistHandler.Get))
	mux.HandleFunc("POST /checklist/{id}/items/{itemID}/toggle", middleware.WithLogging(checklistHandler.ToggleItem))

	// AI command box
	mux.HandleFunc("GET /ai", middleware.WithLogging(aiHandler.Form))
	mux.HandleFunc("POST /ai", middleware.WithLogging(aiHandler.Submit))

	return mux
}
