package domain

import "time"

// TimeRange represents a span of time received from the booking provider.
// It can be an available window, an unavailable window, or a single offered slot.
type TimeRange struct {
	StartTimeUTC time.Time `json:"startTimeUtc"`
	EndTimeUTC   time.Time `json:"endTimeUtc"`
}

// IsZero returns true if the range has no start time
func (r TimeRange) IsZero() bool {
	return r.StartTimeUTC.IsZero()
}

// DurationMinutes returns the length of the range in whole minutes
func (r TimeRange) DurationMinutes() int {
	return int(r.EndTimeUTC.Sub(r.StartTimeUTC) / time.Minute)
}

// ContainsInstant returns true if t falls within [start, end].
// Both boundaries are inclusive: a range contains its own endpoints.
func (r TimeRange) ContainsInstant(t time.Time) bool {
	return !r.StartTimeUTC.After(t) && !r.EndTimeUTC.Before(t)
}

// ContainsRange returns true if the range contains both endpoints of other
func (r TimeRange) ContainsRange(other TimeRange) bool {
	return r.ContainsInstant(other.StartTimeUTC) && r.ContainsInstant(other.EndTimeUTC)
}

// OverlapsEndpoints returns true if either endpoint of other falls within [start, end] inclusive.
// Note this is endpoint overlap, not interval intersection: a range that fully
// straddles another without touching its endpoints does not count.
func (r TimeRange) OverlapsEndpoints(other TimeRange) bool {
	return r.ContainsInstant(other.StartTimeUTC) || r.ContainsInstant(other.EndTimeUTC)
}

// AtDayGranularity reduces both endpoints to the start of their calendar day
// in the given location. Used for whole-day eligibility comparisons.
func (r TimeRange) AtDayGranularity(loc *time.Location) TimeRange {
	return TimeRange{
		StartTimeUTC: StartOfDay(r.StartTimeUTC, loc),
		EndTimeUTC:   StartOfDay(r.EndTimeUTC, loc),
	}
}
