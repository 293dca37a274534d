package availability

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// timeRangeModel is one {start, end} pair as the provider serializes it
type timeRangeModel struct {
	StartTimeUTC time.Time `json:"startTimeUtc"`
	EndTimeUTC   time.Time `json:"endTimeUtc"`
}

// durationModel is a rolling reservable-until window
type durationModel struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// resourceModel is one bookable resource as the provider serializes it
type resourceModel struct {
	ID                          string           `json:"_id"`
	Name                        string           `json:"name"`
	Timezone                    string           `json:"timezone"`
	BookingUnit                 string           `json:"bookingUnit"`
	MinimumBookingDurationInMin int              `json:"minimumBookingDurationInMin"`
	MaximumBookingDurationInMin int              `json:"maximumBookingDurationInMin"`
	BookingIncrementsInMin      int              `json:"bookingIncrementsInMin"`
	AvailableTimes              []timeRangeModel `json:"availableTimes"`
	UnavailableTimes            []timeRangeModel `json:"unavailableTimes"`
	ReservableUntilType         string           `json:"reservableUntilType"`
	ReservableUntil             *time.Time       `json:"reservableUntil"`
	ReservableUntilDuration     *durationModel   `json:"reservableUntilDuration"`
	AvailabilityStartTimeUTC    *time.Time       `json:"availabilityStartTimeUtc"`
	AvailabilityEndTimeUTC      *time.Time       `json:"availabilityEndTimeUtc"`
	AllowPastDateSelection      bool             `json:"allowPastDateSelection"`
}

// availabilityResponse is the provider's reservation-terms payload
type availabilityResponse struct {
	Resources []resourceModel `json:"resources"`
}

// BookingRequest is the reservation submission payload sent to the provider
type BookingRequest struct {
	ResourceID   string    `json:"resourceId"`
	StartTimeUTC time.Time `json:"startTimeUtc"`
	EndTimeUTC   time.Time `json:"endTimeUtc"`
	Timezone     string    `json:"timezone"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Comment      string    `json:"comment,omitempty"`
	Locale       string    `json:"locale,omitempty"`
}

// BookingResponse is the provider's answer to a reservation submission
type BookingResponse struct {
	Success       bool   `json:"success"`
	ReservationID string `json:"reservationId"`
	Message       string `json:"message,omitempty"`
}

// ErrorResponse is the provider's error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (m timeRangeModel) toDomain() domain.TimeRange {
	return domain.TimeRange{StartTimeUTC: m.StartTimeUTC, EndTimeUTC: m.EndTimeUTC}
}

func (m resourceModel) toDomain() *domain.BookingResource {
	res := &domain.BookingResource{
		ID:                          m.ID,
		Name:                        m.Name,
		Timezone:                    m.Timezone,
		Unit:                        domain.BookingUnit(m.BookingUnit),
		MinimumBookingDurationInMin: m.MinimumBookingDurationInMin,
		MaximumBookingDurationInMin: m.MaximumBookingDurationInMin,
		BookingIncrementsInMin:      m.BookingIncrementsInMin,
		AllowPastDateSelection:      m.AllowPastDateSelection,
	}
	if res.Timezone == "" {
		res.Timezone = domain.DefaultTimezone
	}

	for _, tr := range m.AvailableTimes {
		res.AvailableTimes = append(res.AvailableTimes, tr.toDomain())
	}
	for _, tr := range m.UnavailableTimes {
		res.UnavailableTimes = append(res.UnavailableTimes, tr.toDomain())
	}

	switch domain.ReservableUntilType(m.ReservableUntilType) {
	case domain.ReservableUntilTimestamp:
		if m.ReservableUntil != nil {
			res.ReservableUntil = domain.ReservableUntilPolicy{
				Type:      domain.ReservableUntilTimestamp,
				Timestamp: *m.ReservableUntil,
			}
		}
	case domain.ReservableUntilDuration:
		if m.ReservableUntilDuration != nil {
			res.ReservableUntil = domain.ReservableUntilPolicy{
				Type:   domain.ReservableUntilDuration,
				Amount: m.ReservableUntilDuration.Amount,
				Unit:   domain.DurationUnit(m.ReservableUntilDuration.Unit),
			}
		}
	}

	if m.AvailabilityStartTimeUTC != nil {
		res.AvailabilityStartTimeUTC = *m.AvailabilityStartTimeUTC
	}
	if m.AvailabilityEndTimeUTC != nil {
		res.AvailabilityEndTimeUTC = *m.AvailabilityEndTimeUTC
	}

	return res
}

func (r availabilityResponse) toDomain(componentID string) *domain.BookingAvailability {
	snapshot := &domain.BookingAvailability{ComponentID: componentID}
	for _, m := range r.Resources {
		snapshot.Resources = append(snapshot.Resources, m.toDomain())
	}
	return snapshot
}
