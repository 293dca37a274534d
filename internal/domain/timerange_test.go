package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utc(year int, month time.Month, d, h, m int) time.Time {
	return time.Date(year, month, d, h, m, 0, 0, time.UTC)
}

func TestTimeRange_ContainsInstant(t *testing.T) {
	r := TimeRange{
		StartTimeUTC: utc(2026, 3, 10, 9, 0),
		EndTimeUTC:   utc(2026, 3, 10, 17, 0),
	}

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{"inside", utc(2026, 3, 10, 12, 0), true},
		{"exact start is contained", utc(2026, 3, 10, 9, 0), true},
		{"exact end is contained", utc(2026, 3, 10, 17, 0), true},
		{"one minute before start", utc(2026, 3, 10, 8, 59), false},
		{"one minute after end", utc(2026, 3, 10, 17, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ContainsInstant(tt.instant))
		})
	}
}

func TestTimeRange_ContainsRange(t *testing.T) {
	r := TimeRange{
		StartTimeUTC: utc(2026, 3, 9, 0, 0),
		EndTimeUTC:   utc(2026, 3, 13, 0, 0),
	}

	tests := []struct {
		name     string
		other    TimeRange
		expected bool
	}{
		{
			name:     "fully inside",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 10, 0, 0), EndTimeUTC: utc(2026, 3, 11, 0, 0)},
			expected: true,
		},
		{
			name:     "identical range",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 9, 0, 0), EndTimeUTC: utc(2026, 3, 13, 0, 0)},
			expected: true,
		},
		{
			name:     "starts before",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 8, 0, 0), EndTimeUTC: utc(2026, 3, 11, 0, 0)},
			expected: false,
		},
		{
			name:     "ends after",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 10, 0, 0), EndTimeUTC: utc(2026, 3, 14, 0, 0)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ContainsRange(tt.other))
		})
	}
}

func TestTimeRange_OverlapsEndpoints(t *testing.T) {
	r := TimeRange{
		StartTimeUTC: utc(2026, 3, 10, 0, 0),
		EndTimeUTC:   utc(2026, 3, 12, 0, 0),
	}

	tests := []struct {
		name     string
		other    TimeRange
		expected bool
	}{
		{
			name:     "start endpoint inside",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 11, 0, 0), EndTimeUTC: utc(2026, 3, 15, 0, 0)},
			expected: true,
		},
		{
			name:     "end endpoint inside",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 8, 0, 0), EndTimeUTC: utc(2026, 3, 10, 0, 0)},
			expected: true,
		},
		{
			name: "straddles without touching endpoints",
			// Interval intersection exists, but neither endpoint of other is
			// inside r, so endpoint overlap does not fire.
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 9, 0, 0), EndTimeUTC: utc(2026, 3, 13, 0, 0)},
			expected: false,
		},
		{
			name:     "disjoint",
			other:    TimeRange{StartTimeUTC: utc(2026, 3, 14, 0, 0), EndTimeUTC: utc(2026, 3, 15, 0, 0)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.OverlapsEndpoints(tt.other))
		})
	}
}

func TestTimeRange_AtDayGranularity(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// 2026-03-10T02:30Z is still 2026-03-09 in New York
	r := TimeRange{
		StartTimeUTC: utc(2026, 3, 10, 2, 30),
		EndTimeUTC:   utc(2026, 3, 10, 23, 15),
	}

	reduced := r.AtDayGranularity(ny)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, ny), reduced.StartTimeUTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, ny), reduced.EndTimeUTC)
}

func TestTimeRange_DurationMinutes(t *testing.T) {
	r := TimeRange{
		StartTimeUTC: utc(2026, 3, 10, 9, 0),
		EndTimeUTC:   utc(2026, 3, 10, 10, 30),
	}
	assert.Equal(t, 90, r.DurationMinutes())
}
