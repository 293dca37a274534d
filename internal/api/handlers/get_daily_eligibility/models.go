package get_daily_eligibility

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	checkDailyEligibility "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
)

// DailyEligibilityResponse is the HTTP response for a daily-eligibility query
type DailyEligibilityResponse struct {
	ComponentID string          `json:"componentId"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Eligibility map[string]bool `json:"eligibility"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *checkDailyEligibility.Response) *DailyEligibilityResponse {
	return &DailyEligibilityResponse{
		ComponentID: resp.ComponentID,
		StartDate:   resp.StartDay.Format(domain.DateFormat),
		EndDate:     resp.EndDay.Format(domain.DateFormat),
		Eligibility: resp.Eligibility,
	}
}

// ToUseCaseRequest builds the use case request from query parameters
func ToUseCaseRequest(componentID, startDateStr, endDateStr string) (*checkDailyEligibility.Request, error) {
	startDay, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDay, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &checkDailyEligibility.Request{
		ComponentID: componentID,
		StartDay:    startDay,
		EndDay:      endDay,
	}, nil
}
