package submit_booking

import "time"

// Request is a finalized selection submitted for reservation
type Request struct {
	ComponentID  string
	ResourceID   string
	StartTimeUTC time.Time
	EndTimeUTC   time.Time

	// Timezone is the zone the user made the selection in; forwarded to the
	// provider for confirmation rendering
	Timezone string

	Name    string
	Email   string
	Comment string
	Locale  string
}

// Response is the provider's confirmation of a reservation
type Response struct {
	ReservationID string
	Message       string
}
