package domain

import "time"

// BookingUnit represents the policy governing how a resource's time is sliced
// for reservation
type BookingUnit string

const (
	// UnitFlexible lets the user pick an arbitrary start and end within the
	// resource's booking increments (two-step selection flow)
	UnitFlexible BookingUnit = "flexible"

	// UnitFixed offers pre-defined slots booked as-is in a single step
	UnitFixed BookingUnit = "fixed"

	// UnitDaily books whole-day blocks selected through a date-range picker
	UnitDaily BookingUnit = "daily"
)

// BookingResource represents one reservable unit as described by the booking
// provider. Instances are read-only after decoding; a new query window or
// resource selection replaces the snapshot wholesale.
type BookingResource struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Timezone string      `json:"timezone"`
	Unit     BookingUnit `json:"bookingUnit"`

	// Duration constraints for flexible-unit resources, in minutes.
	// Zero means unset.
	MinimumBookingDurationInMin int `json:"minimumBookingDurationInMin,omitempty"`
	MaximumBookingDurationInMin int `json:"maximumBookingDurationInMin,omitempty"`
	BookingIncrementsInMin      int `json:"bookingIncrementsInMin,omitempty"`

	AvailableTimes   []TimeRange `json:"availableTimes,omitempty"`
	UnavailableTimes []TimeRange `json:"unavailableTimes,omitempty"`

	ReservableUntil ReservableUntilPolicy `json:"reservableUntil"`

	// Explicit bounds on when the resource accepts reservations.
	// Zero values mean unbounded.
	AvailabilityStartTimeUTC time.Time `json:"availabilityStartTimeUtc,omitempty"`
	AvailabilityEndTimeUTC   time.Time `json:"availabilityEndTimeUtc,omitempty"`

	// AllowPastDateSelection permits selecting dates before "now" in the
	// daily-mode date picker
	AllowPastDateSelection bool `json:"allowPastDateSelection,omitempty"`
}

// Location resolves the resource's IANA timezone. An unknown or empty zone
// falls back to UTC so that day-boundary math stays total.
func (r *BookingResource) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HasValidIncrements returns true if the flexible-duration increment is usable.
// A flexible resource without a positive increment is misconfigured and must
// not offer any slots.
func (r *BookingResource) HasValidIncrements() bool {
	return r.BookingIncrementsInMin > 0
}

// IsFlexible returns true for flexible-unit resources
func (r *BookingResource) IsFlexible() bool {
	return r.Unit == UnitFlexible
}

// IsDaily returns true for whole-day resources
func (r *BookingResource) IsDaily() bool {
	return r.Unit == UnitDaily
}

// BookingAvailability is the provider's snapshot of resources for one
// component and query window. It is immutable for the duration of a
// resolution pass.
type BookingAvailability struct {
	ComponentID string             `json:"componentId"`
	Resources   []*BookingResource `json:"resources"`
}

// HasDailyResources returns true if any resource in the snapshot books in
// whole-day blocks
func (a *BookingAvailability) HasDailyResources() bool {
	for _, r := range a.Resources {
		if r.IsDaily() {
			return true
		}
	}
	return false
}

// FindResource returns the resource with the given id, or nil
func (a *BookingAvailability) FindResource(id string) *BookingResource {
	for _, r := range a.Resources {
		if r.ID == id {
			return r
		}
	}
	return nil
}
