package submit_booking

import (
	"context"
	"errors"
	"fmt"

	availabilityClient "github.com/airjam-co/booking-resolver/internal/integrations/availability"
	checkDailyEligibility "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

// UseCase submits a finalized selection to the booking provider. Before
// forwarding, the selection is re-validated against the current snapshot:
// the interval must be among the slots the resolver would offer right now.
// This keeps stale widget state from turning into provider calls.
type UseCase struct {
	resolver    SlotResolver
	eligibility DailyEligibilityChecker
	provider    ProviderClient
	logger      Logger
}

// NewUseCase creates a booking-submission use case
func NewUseCase(resolver SlotResolver, eligibility DailyEligibilityChecker, provider ProviderClient, logger Logger) *UseCase {
	return &UseCase{
		resolver:    resolver,
		eligibility: eligibility,
		provider:    provider,
		logger:      logger,
	}
}

// Execute validates and forwards one reservation request
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	if err := uc.confirmSlotOffered(ctx, req); err != nil {
		return nil, err
	}

	result, err := uc.provider.BookReservation(ctx, req.ComponentID, availabilityClient.BookingRequest{
		ResourceID:   req.ResourceID,
		StartTimeUTC: req.StartTimeUTC,
		EndTimeUTC:   req.EndTimeUTC,
		Timezone:     req.Timezone,
		Name:         req.Name,
		Email:        req.Email,
		Comment:      req.Comment,
		Locale:       req.Locale,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityClient.ErrBookingRejected):
			uc.logger.Warn("SubmitBooking: provider rejected booking for component=%s resource=%s: %v",
				req.ComponentID, req.ResourceID, err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		case errors.Is(err, availabilityClient.ErrComponentNotFound):
			return nil, ErrComponentNotFound
		default:
			uc.logger.Error("SubmitBooking: failed to forward booking for component=%s resource=%s: %v",
				req.ComponentID, req.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to forward booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("SubmitBooking: reservation=%s created for component=%s resource=%s",
		result.ReservationID, req.ComponentID, req.ResourceID)

	return &Response{
		ReservationID: result.ReservationID,
		Message:       result.Message,
	}, nil
}

// confirmSlotOffered re-runs slot resolution and checks that the submitted
// interval is currently on offer. Daily-unit resources are absent from
// day-slot resolution and are checked through daily eligibility instead.
func (uc *UseCase) confirmSlotOffered(ctx context.Context, req *Request) error {
	anchor := req.StartTimeUTC
	resolved, err := uc.resolver.Execute(ctx, &resolveSlots.Request{
		ComponentID:        req.ComponentID,
		Day:                req.StartTimeUTC,
		ResourceID:         req.ResourceID,
		AnchorStartTimeUTC: &anchor,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolveSlots.ErrComponentNotFound):
			return ErrComponentNotFound
		case errors.Is(err, resolveSlots.ErrResourceNotFound):
			return ErrResourceNotFound
		default:
			uc.logger.Error("SubmitBooking: failed to resolve slots for component=%s resource=%s: %v",
				req.ComponentID, req.ResourceID, err)
			return fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
		}
	}

	for _, resource := range resolved.Resources {
		if resource.ResourceID != req.ResourceID {
			continue
		}
		for _, slot := range resource.Slots {
			if slot.StartTimeUTC.Equal(req.StartTimeUTC) && slot.EndTimeUTC.Equal(req.EndTimeUTC) {
				return nil
			}
		}
		uc.logger.Warn("SubmitBooking: interval %s..%s not offered for component=%s resource=%s",
			req.StartTimeUTC, req.EndTimeUTC, req.ComponentID, req.ResourceID)
		return ErrSlotNotOffered
	}

	// The resource exists but is absent from day-slot resolution: it books
	// whole days
	eligible, err := uc.eligibility.Execute(ctx, &checkDailyEligibility.Request{
		ComponentID: req.ComponentID,
		StartDay:    req.StartTimeUTC,
		EndDay:      req.EndTimeUTC,
	})
	if err != nil {
		if errors.Is(err, checkDailyEligibility.ErrComponentNotFound) {
			return ErrComponentNotFound
		}
		uc.logger.Error("SubmitBooking: failed to check daily eligibility for component=%s resource=%s: %v",
			req.ComponentID, req.ResourceID, err)
		return fmt.Errorf("%w: failed to check eligibility: %v", ErrInternal, err)
	}

	if !eligible.Eligibility[req.ResourceID] {
		uc.logger.Warn("SubmitBooking: daily range %s..%s not bookable for component=%s resource=%s",
			req.StartTimeUTC, req.EndTimeUTC, req.ComponentID, req.ResourceID)
		return ErrSlotNotOffered
	}

	return nil
}
