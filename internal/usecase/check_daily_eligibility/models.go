package check_daily_eligibility

import "time"

// Request describes a daily-mode bookability query for a date range
type Request struct {
	ComponentID string

	// StartDay and EndDay are the proposed reservation days. Only their
	// calendar day matters; both are reduced to start-of-day in each
	// resource's timezone before comparison.
	StartDay time.Time
	EndDay   time.Time
}

// Response maps resource ids to their bookability for the requested range
type Response struct {
	ComponentID string
	StartDay    time.Time
	EndDay      time.Time
	Eligibility map[string]bool
}
