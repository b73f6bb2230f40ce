// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-plan/models"
)

var ErrNotFound = errors.New("not found")

// listSchedules returns schedules ordered by date. When both start and end
// are non-empty only dates within [start, end] are returned. Dates are
// compared as strings.
func listSchedules(ctx context.Context, db *sql.DB, start, end string) ([]models.Schedule, error) {
	var rows *sql.Rows
	var err error

	if start != "" && end != "" {
		rows, err = db.QueryContext(ctx, `
			SELECT id, date, description
			FROM schedule
			WHERE date BETWEEN $1 AND $2
			ORDER BY date ASC, id ASC
		`, start, end)
	} else {
		rows, err = db.QueryContext(ctx, `
			SELECT id, date, description
			FROM schedule
			ORDER BY date ASC, id ASC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		var date, description sql.NullString
		if err := rows.Scan(&s.ID, &date, &description); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		s.Date = date.String
		s.Description = description.String
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

func insertSchedule(ctx context.Context, db *sql.DB, date, description string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO schedule (date, description)
		VALUES ($1, $2)
		RETURNING id
	`, date, description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert schedule: %w", err)
	}
	return id, nil
}

// splitItems turns "A, B,,C " into [A B C]
func splitItems(items string) []string {
	var out []string
	for _, item := range strings.Split(items, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// insertChecklist stores a checklist and its items in one transaction
func insertChecklist(ctx context.Context, db *sql.DB, title, date string, items []string) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var checklistID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO checklist (title, date)
		VALUES ($1, $2)
		RETURNING id
	`, title, date).Scan(&checklistID)
	if err != nil {
		return 0, fmt.Errorf("insert checklist: %w", err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO checklist_item (checklist_id, item_name)
			VALUES ($1, $2)
		`, checklistID, item)
		if err != nil {
			return 0, fmt.Errorf("insert checklist item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit checklist: %w", err)
	}

	return checklistID, nil
}

func listChecklists(ctx context.Context, db *sql.DB) ([]models.Checklist, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, date
		FROM checklist
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query checklists: %w", err)
	}
	defer rows.Close()

	checklists := []models.Checklist{}
	for rows.Next() {
		var c models.Checklist
		var title, date sql.NullString
		if err := rows.Scan(&c.ID, &title, &date); err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		c.Title = title.String
		c.Date = date.String
		checklists = append(checklists, c)
	}

	return checklists, rows.Err()
}

// getChecklist returns the checklist with its items ordered by id, or
// ErrNotFound
func getChecklist(ctx context.Context, db *sql.DB, id int64) (models.ChecklistWithItems, error) {
	var result models.ChecklistWithItems
	var title, date sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, title, date
		FROM checklist
		WHERE id = $1
	`, id).Scan(&result.Checklist.ID, &title, &date)
	if err == sql.ErrNoRows {
		return result, ErrNotFound
	}
	if err != nil {
		return result, fmt.Errorf("query checklist: %w", err)
	}
	result.Checklist.Title = title.String
	result.Checklist.Date = date.String

	rows, err := db.QueryContext(ctx, `
		SELECT id, checklist_id, item_name, is_checked
		FROM checklist_item
		WHERE checklist_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return result, fmt.Errorf("query checklist items: %w", err)
	}
	defer rows.Close()

	result.Items = []models.ChecklistItem{}
	for rows.Next() {
		var item models.ChecklistItem
		var name sql.NullString
		var checked sql.NullBool
		if err := rows.Scan(&item.ID, &item.ChecklistID, &name, &checked); err != nil {
			return result, fmt.Errorf("scan checklist item: %w", err)
		}
		item.ItemName = name.String
		item.IsChecked = checked.Bool
		result.Items = append(result.Items, item)
	}

	return result, rows.Err()
}

// toggleItem flips is_checked on one item of one checklist, or returns
// ErrNotFound
func toggleItem(ctx context.Context, db *sql.DB, checklistID, itemID int64) error {
	res, err := db.ExecContext(ctx, `
		UPDATE checklist_item
		SET is_checked = NOT is_checked
		WHERE id = $1 AND checklist_id = $2
	`, itemID, checklistID)
	if err != nil {
		return fmt.Errorf("toggle checklist item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggle checklist item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
