package resolve_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	availabilityService "github.com/airjam-co/booking-resolver/internal/service/availability"
)

// UseCase resolves the presentable booking slots for a component and day.
// It is a pure computation over the availability snapshot: the snapshot is
// treated as immutable for the duration of one resolution pass, and
// identical inputs always produce identical, order-preserving output.
type UseCase struct {
	availability AvailabilityService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a slot-resolution use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute resolves slots for the requested day
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSlots: validation failed: %v", err)
		return nil, err
	}

	day := req.Day
	if day.IsZero() {
		day = uc.timeProvider.Now()
	}

	snapshot, err := uc.availability.GetAvailability(ctx, req.ComponentID, queryWindow(day))
	if err != nil {
		if errors.Is(err, availabilityService.ErrComponentNotFound) {
			uc.logger.Warn("ResolveSlots: component=%s not found", req.ComponentID)
			return nil, ErrComponentNotFound
		}
		uc.logger.Error("ResolveSlots: failed to get availability for component=%s: %v", req.ComponentID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	response := &Response{
		ComponentID: req.ComponentID,
		Day:         day,
		Resources:   []ResourceSlots{},
	}

	if req.ResourceID != "" && snapshot.FindResource(req.ResourceID) == nil {
		uc.logger.Warn("ResolveSlots: resource=%s not found in component=%s", req.ResourceID, req.ComponentID)
		return nil, ErrResourceNotFound
	}

	for _, resource := range snapshot.Resources {
		if req.ResourceID != "" && resource.ID != req.ResourceID {
			continue
		}
		// Daily-unit resources book whole days through the eligibility and
		// date-bounds operations, not through day-slot resolution
		if resource.IsDaily() {
			continue
		}
		if resource.IsFlexible() && !resource.HasValidIncrements() {
			uc.logger.Warn("ResolveSlots: resource=%s has no usable booking increment, excluding all slots", resource.ID)
		}
		response.Resources = append(response.Resources, resolveResource(resource, day, req.AnchorStartTimeUTC))
	}

	uc.logger.Info("ResolveSlots: resolved %d resources for component=%s day=%s anchor=%v",
		len(response.Resources), req.ComponentID, day.Format(domain.DateFormat), req.AnchorStartTimeUTC != nil)

	return response, nil
}

// queryWindow is the provider fetch window for a single-day query. It pads
// one UTC day on each side so the resource-timezone day is fully covered
// regardless of the zone offset.
func queryWindow(day time.Time) domain.TimeRange {
	dayStart := domain.StartOfDay(day, time.UTC)
	return domain.TimeRange{
		StartTimeUTC: dayStart.AddDate(0, 0, -1),
		EndTimeUTC:   dayStart.AddDate(0, 0, 2),
	}
}
