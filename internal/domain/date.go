package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout is used when the configuration does not set a display layout.
const DefaultDateLayout = "2006-01-02"

// dateInputLayouts are tried in order by ParseDate.
var dateInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	DefaultDateLayout,
}

// relativeDayPattern matches "+3d" style offsets.
var relativeDayPattern = regexp.MustCompile(`^\+(\d+)d$`)

// ParseDate parses a user supplied date relative to now.
// Accepted forms: RFC 3339, "YYYY-MM-DD[ HH:MM]", "today", "tomorrow" and "+Nd".
// Layouts without a zone are interpreted in now's location. An empty string
// yields the zero time.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	switch strings.ToLower(s) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}
	if m := relativeDayPattern.FindStringSubmatch(s); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return today.AddDate(0, 0, days), nil
	}

	for _, layout := range dateInputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD, RFC 3339, today, tomorrow or +Nd)", ErrInvalidDate, s)
}

// FormatDue renders a due date for display; the zero time renders as "-".
func FormatDue(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(layout)
}
