package timeutil

import (
	"testing"
	"time"
)

func TestNow_AlwaysUTC(t *testing.T) {
	now := Now()

	if now.Location() != time.UTC {
		t.Errorf("Now() returned non-UTC timezone: %v", now.Location())
	}
}

func TestStartOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "midnight UTC",
			input:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: "2026-03-10 00:00:00 +0000 UTC",
		},
		{
			name:     "noon UTC",
			input:    time.Date(2026, 3, 10, 12, 30, 45, 0, time.UTC),
			expected: "2026-03-10 00:00:00 +0000 UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfDay(tt.input)

			if result.String() != tt.expected {
				t.Errorf("StartOfDay() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestWholeDaysCeil(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "exact thirty one days",
			from:     base,
			to:       base.AddDate(0, 0, 31),
			expected: 31,
		},
		{
			name:     "partial day rounds up",
			from:     base,
			to:       base.Add(36 * time.Hour),
			expected: 2,
		},
		{
			name:     "under one day rounds up to one",
			from:     base,
			to:       base.Add(6 * time.Hour),
			expected: 1,
		},
		{
			name:     "same instant is zero",
			from:     base,
			to:       base,
			expected: 0,
		},
		{
			name:     "reversed range is negative",
			from:     base,
			to:       base.AddDate(0, 0, -2),
			expected: -2,
		},
		{
			name:     "reversed partial day stays negative",
			from:     base,
			to:       base.Add(-36 * time.Hour),
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeDaysCeil(tt.from, tt.to); got != tt.expected {
				t.Errorf("WholeDaysCeil() = %d, want %d", got, tt.expected)
			}
		})
	}
}
