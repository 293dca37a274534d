package refresh_availability

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// defaultWindowDays is how far ahead a refresh fetches when the caller
// does not bound the window
const defaultWindowDays = 31

// RefreshResponse is the HTTP response for a forced snapshot refresh
type RefreshResponse struct {
	ComponentID  string    `json:"componentId"`
	Resources    int       `json:"resources"`
	StartTimeUTC time.Time `json:"startTimeUtc"`
	EndTimeUTC   time.Time `json:"endTimeUtc"`
}

// ParseWindow builds the fetch window from query parameters, defaulting to
// now through now plus defaultWindowDays
func ParseWindow(startStr, endStr string, now time.Time) (domain.TimeRange, error) {
	window := domain.TimeRange{
		StartTimeUTC: now,
		EndTimeUTC:   now.AddDate(0, 0, defaultWindowDays),
	}

	if startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return domain.TimeRange{}, err
		}
		window.StartTimeUTC = start
	}

	if endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return domain.TimeRange{}, err
		}
		window.EndTimeUTC = end
	}

	return window, nil
}
