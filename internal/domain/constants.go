package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimezone is used when a resource declares no zone of its own
const DefaultTimezone = "UTC"
