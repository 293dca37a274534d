package resolve_slots

import "fmt"

// validateRequest validates request parameters
func validateRequest(req *Request) error {
	if req.ComponentID == "" {
		return fmt.Errorf("%w: componentID is required", ErrInvalidInput)
	}

	if req.AnchorStartTimeUTC != nil && req.AnchorStartTimeUTC.IsZero() {
		return fmt.Errorf("%w: anchor start time must not be zero", ErrInvalidInput)
	}

	return nil
}
