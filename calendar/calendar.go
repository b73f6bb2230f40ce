// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package calendar renders schedules as an iCalendar feed so they can be
// subscribed to from a calendar app.
package calendar

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-plan/models"
)

const (
	ProductID  = "-//danielhkuo//quickly-plan//EN"
	DateLayout = "2006-01-02"
)

// uidNamespace scopes the name-based UUIDs used as event UIDs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/danielhkuo/quickly-plan/schedule"))

// EventUID returns a stable UID for a schedule row, so calendar apps update
// rather than duplicate events between refreshes
func EventUID(scheduleID int64) string {
	return uuid.NewSHA1(uidNamespace, []byte(fmt.Sprint(scheduleID))).String() + "@quickly-plan"
}

// Export builds an all-day VEVENT for every schedule whose date parses as
// YYYY-MM-DD. Rows with other date strings are skipped.
func Export(schedules []models.Schedule, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName("quickly-plan")

	skipped := 0
	for _, s := range schedules {
		day, err := time.Parse(DateLayout, strings.TrimSpace(s.Date))
		if err != nil {
			skipped++
			continue
		}

		event := cal.AddEvent(EventUID(s.ID))
		event.SetDtStampTime(now.UTC())
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(s.Description)
	}

	if skipped > 0 {
		slog.Debug("schedules skipped in calendar export", "skipped", skipped)
	}

	return cal.Serialize()
}
