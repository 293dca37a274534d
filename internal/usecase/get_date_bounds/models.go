package get_date_bounds

import "time"

// Request describes a date-picker bounds query for one daily-unit resource
type Request struct {
	ComponentID string
	ResourceID  string

	// WindowStart and WindowEnd bound the dates for which per-date
	// eligibility is evaluated (typically the month shown in the picker).
	// Zero values default to a month starting today.
	WindowStart time.Time
	WindowEnd   time.Time
}

// Response carries the selectable-date bounds and the dates to disable
// inside the queried window
type Response struct {
	ComponentID string
	ResourceID  string

	// MinDate and MaxDate are inclusive selection bounds. Nil means
	// unbounded in that direction.
	MinDate *time.Time
	MaxDate *time.Time

	// DisabledDates are the start-of-day instants inside the queried window
	// that must not be selectable. Dates absent from this list are
	// selectable, including dates with no availability data at all.
	DisabledDates []time.Time
}
