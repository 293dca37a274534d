package check_daily_eligibility

import (
	"context"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// AvailabilityService supplies the availability snapshot to check against
type AvailabilityService interface {
	GetAvailability(ctx context.Context, componentID string, window domain.TimeRange) (*domain.BookingAvailability, error)
}

// Logger is the logging surface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
