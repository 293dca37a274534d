package submit_booking

import (
	"context"

	availabilityClient "github.com/airjam-co/booking-resolver/internal/integrations/availability"
	checkDailyEligibility "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

// SlotResolver re-resolves the offered slots a selection must match
type SlotResolver interface {
	Execute(ctx context.Context, req *resolveSlots.Request) (*resolveSlots.Response, error)
}

// DailyEligibilityChecker validates whole-day selections
type DailyEligibilityChecker interface {
	Execute(ctx context.Context, req *checkDailyEligibility.Request) (*checkDailyEligibility.Response, error)
}

// ProviderClient forwards validated reservations to the booking provider
type ProviderClient interface {
	BookReservation(ctx context.Context, componentID string, request availabilityClient.BookingRequest) (*availabilityClient.BookingResponse, error)
}

// Logger is the logging surface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
