package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	now := time.Date(2026, 10, 19, 16, 45, 0, 0, loc)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"2026-11-01", time.Date(2026, 11, 1, 0, 0, 0, 0, loc)},
		{"2026-11-01 08:30", time.Date(2026, 11, 1, 8, 30, 0, 0, loc)},
		{"2026-11-01T08:30", time.Date(2026, 11, 1, 8, 30, 0, 0, loc)},
		{"2026-11-01T08:30:00Z", time.Date(2026, 11, 1, 8, 30, 0, 0, time.UTC)},
		{"today", time.Date(2026, 10, 19, 0, 0, 0, 0, loc)},
		{"Tomorrow", time.Date(2026, 10, 20, 0, 0, 0, 0, loc)},
		{"+14d", time.Date(2026, 11, 2, 0, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in, now)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"yesterday-ish", "11/01/2026", "+3w"} {
		_, err := ParseDate(in, time.Now())
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestFormatDue(t *testing.T) {
	assert.Equal(t, "-", FormatDue(time.Time{}, DefaultDateLayout))
	assert.Equal(t, "2026-01-02", FormatDue(time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), ""))
	assert.Equal(t, "02 Jan 03:04", FormatDue(time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), "02 Jan 15:04"))
}
