package availability

import "errors"

var (
	// ErrComponentNotFound is returned when the provider knows no calendar
	// component with the requested id
	ErrComponentNotFound = errors.New("availability client: component not found")

	// ErrBookingRejected is returned when the provider refuses a reservation
	// request (slot taken, validation failure on the provider side)
	ErrBookingRejected = errors.New("availability client: booking rejected")

	// ErrUnauthorized is returned when the provider rejects the configured
	// auth token
	ErrUnauthorized = errors.New("availability client: unauthorized")

	// ErrInternal is returned on client-side failures (request construction,
	// transport errors)
	ErrInternal = errors.New("availability client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or an undecodable body
	ErrInvalidResponse = errors.New("availability client: invalid response")
)
