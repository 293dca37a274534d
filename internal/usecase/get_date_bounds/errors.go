package get_date_bounds

import "errors"

var (
	// ErrInvalidInput is returned on malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrComponentNotFound is returned when the provider knows no such component
	ErrComponentNotFound = errors.New("component not found")

	// ErrResourceNotFound is returned when the requested resource is not part
	// of the component's snapshot
	ErrResourceNotFound = errors.New("resource not found")

	// ErrWindowTooLarge is returned when the queried window exceeds the
	// per-request evaluation limit
	ErrWindowTooLarge = errors.New("query window too large")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
