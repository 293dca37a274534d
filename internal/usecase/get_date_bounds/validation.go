package get_date_bounds

import (
	"fmt"
	"time"
)

// maxWindowDays caps per-request date evaluation at a little over a year
const maxWindowDays = 370

// validateRequest validates request parameters and applies window defaults
func validateRequest(req *Request, now time.Time) error {
	if req.ComponentID == "" {
		return fmt.Errorf("%w: componentID is required", ErrInvalidInput)
	}

	if req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if req.WindowStart.IsZero() {
		req.WindowStart = now
	}
	if req.WindowEnd.IsZero() {
		req.WindowEnd = req.WindowStart.AddDate(0, 1, 0)
	}

	if req.WindowEnd.Before(req.WindowStart) {
		return fmt.Errorf("%w: window end must not precede window start", ErrInvalidInput)
	}

	if req.WindowEnd.Sub(req.WindowStart) > maxWindowDays*24*time.Hour {
		return fmt.Errorf("%w: window must not exceed %d days", ErrWindowTooLarge, maxWindowDays)
	}

	return nil
}
