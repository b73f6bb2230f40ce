// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Plan web app.

# Handler Types

Each handler is a struct holding its dependencies:

  - PageHandler: Landing page
  - ScheduleHandler: Schedule list, form submission, JSON and iCalendar feeds
  - ChecklistHandler: Checklist list, creation, detail and item toggling
  - AIHandler: Natural-language command box

Handlers are created via constructor functions:

	scheduleHandler := handlers.NewScheduleHandler(db, pages)
	aiHandler := handlers.NewAIHandler(db, pages, intent.NewParser(model))

# Forms

Form fields are read with middleware.FormValues. A field that is missing from
the request body is rejected with 400; an empty value is stored as-is.

	POST /schedule  date, description     → redirect /schedule
	POST /checklist title, date, items    → redirect /checklist
	POST /ai        prompt                → ai_interface page

Checklist items are comma separated. Each item is trimmed and empty items are
dropped. The checklist and its items are written in one transaction.

# AI Commands

AIHandler.Submit classifies the prompt through intent.Parser and executes the
result:

  - query_schedule: lists schedules between start_date and end_date
    (inclusive), or all schedules when either bound is missing
  - add_schedule: inserts a schedule when both date and description are set
  - anything else: reports the intent as unsupported

Model failures return 502; database failures return 500.
*/
package handlers
