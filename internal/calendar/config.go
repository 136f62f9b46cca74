package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// defaultHolidays is the built-in organization calendar, used when no
// holiday file is configured.
var defaultHolidays = []string{
	"2025-01-01",
	"2025-01-26",
	"2025-03-29",
	"2025-04-14",
	"2025-05-01",
	"2025-08-15",
	"2025-10-02",
	"2025-11-04",
	"2025-12-25",
}

type holidayFile struct {
	Holidays []string `json:"holidays"`
}

// Load builds a calendar from a holiday JSON file of the form
// {"holidays": ["2025-01-01", ...]}. An empty path falls back to the
// built-in default calendar.
func Load(path string) (*Calendar, error) {
	dates := defaultHolidays

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read holidays file: %w", err)
		}

		var cfg holidayFile
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal holidays file: %w", err)
		}
		dates = cfg.Holidays
	}

	holidays := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := ParseDate(d)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", d, err)
		}
		holidays = append(holidays, t)
	}

	return New(holidays), nil
}
