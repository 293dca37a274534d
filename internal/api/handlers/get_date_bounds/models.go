package get_date_bounds

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	getDateBounds "github.com/airjam-co/booking-resolver/internal/usecase/get_date_bounds"
)

// DateBoundsResponse is the HTTP response for a date-bounds query
type DateBoundsResponse struct {
	ComponentID   string   `json:"componentId"`
	ResourceID    string   `json:"resourceId"`
	MinDate       *string  `json:"minDate"`
	MaxDate       *string  `json:"maxDate"`
	DisabledDates []string `json:"disabledDates"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getDateBounds.Response) *DateBoundsResponse {
	out := &DateBoundsResponse{
		ComponentID:   resp.ComponentID,
		ResourceID:    resp.ResourceID,
		DisabledDates: make([]string, len(resp.DisabledDates)),
	}

	if resp.MinDate != nil {
		formatted := resp.MinDate.Format(domain.DateFormat)
		out.MinDate = &formatted
	}
	if resp.MaxDate != nil {
		formatted := resp.MaxDate.Format(domain.DateFormat)
		out.MaxDate = &formatted
	}

	for i, date := range resp.DisabledDates {
		out.DisabledDates[i] = date.Format(domain.DateFormat)
	}

	return out
}

// ToUseCaseRequest builds the use case request from path and query parameters
func ToUseCaseRequest(componentID, resourceID, windowStartStr, windowEndStr string) (*getDateBounds.Request, error) {
	req := &getDateBounds.Request{
		ComponentID: componentID,
		ResourceID:  resourceID,
	}

	if windowStartStr != "" {
		windowStart, err := time.Parse(domain.DateFormat, windowStartStr)
		if err != nil {
			return nil, err
		}
		req.WindowStart = windowStart
	}

	if windowEndStr != "" {
		windowEnd, err := time.Parse(domain.DateFormat, windowEndStr)
		if err != nil {
			return nil, err
		}
		req.WindowEnd = windowEnd
	}

	return req, nil
}
