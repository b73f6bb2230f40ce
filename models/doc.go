// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, page, and response types.

# Domain Types

Rows as stored in the database:

  - Schedule: date and free-text description
  - Checklist: title and date
  - ChecklistItem: item name and checked flag, linked by checklist_id
  - ChecklistWithItems: a checklist together with its items

Dates are plain strings. Nothing checks their format; range queries compare
them lexically, so "2025-03-25" style dates sort correctly.

# Page Types

Data handed to the HTML templates:

  - SchedulePage, ChecklistPage, ChecklistDetailPage, AIPage

# Response Types

Types for JSON responses:

  - ScheduleListResponse: schedules, start, end
  - ErrorResponse: error, message

# Constants

Database types:

	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

Form fields:

	FieldDate, FieldDescription, FieldTitle, FieldItems, FieldPrompt
*/
package models
