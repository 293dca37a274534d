package check_daily_eligibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	availabilityService "github.com/airjam-co/booking-resolver/internal/service/availability"
)

// UseCase computes per-resource bookability for a whole-day reservation
// range. The rendering layer uses the result to enable or disable the
// "Book" action per resource.
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase creates a daily-eligibility use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute checks every resource of the component against the requested range
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDailyEligibility: validation failed: %v", err)
		return nil, err
	}

	window := domain.TimeRange{
		StartTimeUTC: domain.StartOfDay(req.StartDay, time.UTC).AddDate(0, 0, -1),
		EndTimeUTC:   domain.StartOfDay(req.EndDay, time.UTC).AddDate(0, 0, 2),
	}

	snapshot, err := uc.availability.GetAvailability(ctx, req.ComponentID, window)
	if err != nil {
		if errors.Is(err, availabilityService.ErrComponentNotFound) {
			uc.logger.Warn("CheckDailyEligibility: component=%s not found", req.ComponentID)
			return nil, ErrComponentNotFound
		}
		uc.logger.Error("CheckDailyEligibility: failed to get availability for component=%s: %v", req.ComponentID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	eligibility := make(map[string]bool, len(snapshot.Resources))
	for _, resource := range snapshot.Resources {
		eligibility[resource.ID] = isResourceEligible(resource, req.StartDay, req.EndDay)
	}

	uc.logger.Info("CheckDailyEligibility: checked %d resources for component=%s range=%s..%s",
		len(eligibility), req.ComponentID,
		req.StartDay.Format(domain.DateFormat), req.EndDay.Format(domain.DateFormat))

	return &Response{
		ComponentID: req.ComponentID,
		StartDay:    req.StartDay,
		EndDay:      req.EndDay,
		Eligibility: eligibility,
	}, nil
}
