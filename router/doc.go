// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Plan web app.

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, pages, parser)

# Endpoints

	GET  /health                                  - Liveness check
	GET  /                                        - Landing page
	GET  /schedule                                - Schedule list and form
	POST /schedule                                - Add schedule
	GET  /schedule.ics                            - iCalendar feed
	GET  /api/schedule?start=&end=                - Schedules as JSON
	GET  /checklist                               - Checklist list and form
	POST /checklist                               - Add checklist with items
	GET  /checklist/{id}                          - Checklist detail
	POST /checklist/{id}/items/{itemID}/toggle    - Flip an item's checked flag
	GET  /ai                                      - AI command form
	POST /ai                                      - Run an AI command

Every route except /health is wrapped in middleware.WithLogging.
*/
package router
