package resolve_slots

import (
	"context"
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// AvailabilityService supplies the availability snapshot to resolve against
type AvailabilityService interface {
	GetAvailability(ctx context.Context, componentID string, window domain.TimeRange) (*domain.BookingAvailability, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
