package cli

import (
	"fmt"
	"strings"
	"time"
)

// resolveWhen picks the timestamp for a new record. A bare date keeps the
// current clock time so several backfilled entries still sort naturally.
func resolveWhen(dateFlag string, now time.Time) (time.Time, error) {
	dateFlag = strings.TrimSpace(dateFlag)
	if dateFlag == "" {
		return now, nil
	}

	if parsed, err := time.Parse(time.RFC3339, dateFlag); err == nil {
		return parsed, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: expected YYYY-MM-DD or RFC3339, got %q", dateFlag)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}

// formatDay renders a date the way the progress report shows it: D-M-YYYY.
func formatDay(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Day(), int(t.Month()), t.Year())
}
