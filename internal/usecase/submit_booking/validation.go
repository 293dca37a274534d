package submit_booking

import (
	"fmt"
	"strings"
)

// validateRequest validates request parameters
func validateRequest(req *Request) error {
	if req.ComponentID == "" {
		return fmt.Errorf("%w: componentID is required", ErrInvalidInput)
	}

	if req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if req.StartTimeUTC.IsZero() || req.EndTimeUTC.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}

	if !req.EndTimeUTC.After(req.StartTimeUTC) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	return nil
}
