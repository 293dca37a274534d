package check_daily_eligibility

import "errors"

var (
	// ErrInvalidInput is returned on malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrComponentNotFound is returned when the provider knows no such component
	ErrComponentNotFound = errors.New("component not found")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
