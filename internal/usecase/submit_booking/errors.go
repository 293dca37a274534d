package submit_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrComponentNotFound is returned when the provider knows no such component
	ErrComponentNotFound = errors.New("component not found")

	// ErrResourceNotFound is returned when the selected resource is not part
	// of the component's snapshot
	ErrResourceNotFound = errors.New("resource not found")

	// ErrSlotNotOffered is returned when the submitted interval is not among
	// the slots currently offered for the resource
	ErrSlotNotOffered = errors.New("selected slot is not offered")

	// ErrBookingRejected is returned when the provider refuses the reservation
	ErrBookingRejected = errors.New("booking rejected by provider")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
