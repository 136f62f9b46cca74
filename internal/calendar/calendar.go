// Package calendar answers working-day questions against a fixed holiday
// configuration. Saturday and Sunday are always non-working; everything else
// is a working day unless it appears in the configured holiday set. The
// calendar is immutable after construction and safe for concurrent reads.
package calendar

import (
	"net/http"
	"time"

	"leavedesk/internal/shared/apperror"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = apperror.New(
	"INVALID_DATE",
	"invalid date format, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

type Calendar struct {
	holidays map[string]struct{}
}

// New builds a calendar from holiday dates. Time-of-day and zone on the
// given dates are ignored; only the calendar date identity is kept.
func New(holidays []time.Time) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format(DateLayout)] = struct{}{}
	}
	return &Calendar{holidays: set}
}

// ParseDate parses a strict YYYY-MM-DD date string.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// IsWorkingDay reports whether t falls on a working day. Comparison is by
// calendar date, never by instant.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := c.holidays[t.Format(DateLayout)]
	return !holiday
}

// CountWorkingDays counts working days in the inclusive range [start, end].
// An inverted range yields 0; callers use this defensively.
func (c *Calendar) CountWorkingDays(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
