package domain

import "time"

// BookingRequestResource is one concrete bookable interval offered to the
// user, or the finalized selection submitted for reservation
type BookingRequestResource struct {
	Resource     *BookingResource `json:"resource"`
	StartTimeUTC time.Time        `json:"startTimeUtc"`
	EndTimeUTC   time.Time        `json:"endTimeUtc"`
	Timezone     string           `json:"timezone"`
}

// DurationMinutes returns the selection length in whole minutes
func (b BookingRequestResource) DurationMinutes() int {
	return int(b.EndTimeUTC.Sub(b.StartTimeUTC) / time.Minute)
}
