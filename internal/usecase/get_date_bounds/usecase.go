package get_date_bounds

import (
	"context"
	"errors"
	"fmt"

	"github.com/airjam-co/booking-resolver/internal/domain"
	availabilityService "github.com/airjam-co/booking-resolver/internal/service/availability"
)

// UseCase computes the selectable-date bounds and per-date exclusions that
// drive a daily-mode date-range picker.
type UseCase struct {
	availability AvailabilityService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a date-bounds use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute computes bounds for the requested resource
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetDateBounds: validation failed: %v", err)
		return nil, err
	}

	window := domain.TimeRange{StartTimeUTC: req.WindowStart, EndTimeUTC: req.WindowEnd}
	snapshot, err := uc.availability.GetAvailability(ctx, req.ComponentID, window)
	if err != nil {
		if errors.Is(err, availabilityService.ErrComponentNotFound) {
			uc.logger.Warn("GetDateBounds: component=%s not found", req.ComponentID)
			return nil, ErrComponentNotFound
		}
		uc.logger.Error("GetDateBounds: failed to get availability for component=%s: %v", req.ComponentID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	resource := snapshot.FindResource(req.ResourceID)
	if resource == nil {
		uc.logger.Warn("GetDateBounds: resource=%s not found in component=%s", req.ResourceID, req.ComponentID)
		return nil, ErrResourceNotFound
	}

	minDate := minSelectableDate(resource, now)
	maxDate := maxSelectableDate(resource, now)
	disabled := disabledDatesInWindow(resource, req.WindowStart, req.WindowEnd, minDate, maxDate)

	uc.logger.Info("GetDateBounds: component=%s resource=%s window=%s..%s disabled=%d",
		req.ComponentID, req.ResourceID,
		req.WindowStart.Format(domain.DateFormat), req.WindowEnd.Format(domain.DateFormat), len(disabled))

	return &Response{
		ComponentID:   req.ComponentID,
		ResourceID:    req.ResourceID,
		MinDate:       minDate,
		MaxDate:       maxDate,
		DisabledDates: disabled,
	}, nil
}
