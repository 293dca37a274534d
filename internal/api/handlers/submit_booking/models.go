package submit_booking

import (
	"time"

	submitBooking "github.com/airjam-co/booking-resolver/internal/usecase/submit_booking"
)

// BookingRequest is the HTTP body for a booking submission
type BookingRequest struct {
	ResourceID   string    `json:"resourceId"`
	StartTimeUTC time.Time `json:"startTimeUtc"`
	EndTimeUTC   time.Time `json:"endTimeUtc"`
	Timezone     string    `json:"timezone"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Comment      string    `json:"comment"`
	Locale       string    `json:"locale"`
}

// BookingResponse is the HTTP confirmation of a reservation
type BookingResponse struct {
	ReservationID string `json:"reservationId"`
	Message       string `json:"message"`
}

// ToUseCaseRequest builds the use case request from the path component and body
func (b *BookingRequest) ToUseCaseRequest(componentID string) *submitBooking.Request {
	return &submitBooking.Request{
		ComponentID:  componentID,
		ResourceID:   b.ResourceID,
		StartTimeUTC: b.StartTimeUTC,
		EndTimeUTC:   b.EndTimeUTC,
		Timezone:     b.Timezone,
		Name:         b.Name,
		Email:        b.Email,
		Comment:      b.Comment,
		Locale:       b.Locale,
	}
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ReservationID: resp.ReservationID,
		Message:       resp.Message,
	}
}
