package availability

import (
	"context"
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	"github.com/airjam-co/booking-resolver/internal/infra/storage/snapshot"
)

// ProviderClient fetches reservation terms from the remote booking provider
type ProviderClient interface {
	FetchReservationTerms(ctx context.Context, componentID string, window domain.TimeRange, resourceID string) (*domain.BookingAvailability, error)
}

// SnapshotRepository persists the latest availability snapshot per component
type SnapshotRepository interface {
	Upsert(ctx context.Context, availability *domain.BookingAvailability, fetchedAt time.Time) error
	GetLatest(ctx context.Context, componentID string) (*snapshot.StoredSnapshot, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service depends on
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
