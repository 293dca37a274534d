package check_daily_eligibility

import "fmt"

// validateRequest validates request parameters
func validateRequest(req *Request) error {
	if req.ComponentID == "" {
		return fmt.Errorf("%w: componentID is required", ErrInvalidInput)
	}

	if req.StartDay.IsZero() || req.EndDay.IsZero() {
		return fmt.Errorf("%w: start and end days are required", ErrInvalidInput)
	}

	if req.EndDay.Before(req.StartDay) {
		return fmt.Errorf("%w: end day must not precede start day", ErrInvalidInput)
	}

	return nil
}
