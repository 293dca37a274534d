package refresh_availability

import (
	"context"
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// AvailabilityRefresher force-fetches and stores a provider snapshot
type AvailabilityRefresher interface {
	Refresh(ctx context.Context, componentID string, window domain.TimeRange) (*domain.BookingAvailability, error)
}

// TimeProvider abstracts time for testability
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the handler depends on
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
