package availability

import "errors"

var (
	// ErrComponentNotFound is returned when the provider knows no such component
	ErrComponentNotFound = errors.New("availability service: component not found")

	// ErrProviderUnavailable is returned when the provider is unreachable and
	// no stored snapshot exists to fall back to
	ErrProviderUnavailable = errors.New("availability service: provider unavailable and no stored snapshot")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("availability service: internal error")
)
