package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/airjam-co/booking-resolver/internal/domain"
	availabilityClient "github.com/airjam-co/booking-resolver/internal/integrations/availability"
	snapshotRepo "github.com/airjam-co/booking-resolver/internal/infra/storage/snapshot"
)

// Service owns the availability snapshot lifecycle: it fetches reservation
// terms from the provider, persists the result wholesale, and serves the
// last stored snapshot when the provider is unreachable.
//
// Snapshots are replaced, never merged. A response from an older provider
// query can never overwrite a fresher stored snapshot (the repository
// guards on fetched_at), so resolution always runs against the latest
// received data.
type Service struct {
	client       ProviderClient
	repo         SnapshotRepository
	timeProvider TimeProvider
	log          Logger
}

// NewService creates an availability service
func NewService(client ProviderClient, repo SnapshotRepository, log Logger) *Service {
	return &Service{
		client:       client,
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// GetAvailability returns the freshest snapshot it can. The provider is
// always tried first; on success the stored snapshot is replaced. When the
// provider is unreachable the last stored snapshot is served instead, so
// the widget keeps rendering during provider outages.
func (s *Service) GetAvailability(ctx context.Context, componentID string, window domain.TimeRange) (*domain.BookingAvailability, error) {
	fetchedAt := s.timeProvider.Now()

	fresh, err := s.client.FetchReservationTerms(ctx, componentID, window, "")
	if err == nil {
		if storeErr := s.repo.Upsert(ctx, fresh, fetchedAt); storeErr != nil {
			// Snapshot persistence is best-effort: a store failure only
			// costs the degradation fallback, not the current response.
			s.log.Warn("GetAvailability: failed to store snapshot for component=%s: %v", componentID, storeErr)
		}
		return fresh, nil
	}

	if errors.Is(err, availabilityClient.ErrComponentNotFound) {
		return nil, ErrComponentNotFound
	}

	s.log.Error("GetAvailability: provider unreachable for component=%s, trying stored snapshot: %v", componentID, err)

	stored, storeErr := s.repo.GetLatest(ctx, componentID)
	if storeErr != nil {
		if errors.Is(storeErr, snapshotRepo.ErrSnapshotNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		return nil, fmt.Errorf("%w: failed to load stored snapshot: %v", ErrInternal, storeErr)
	}

	s.log.Warn("GetAvailability: serving degraded snapshot for component=%s fetched at %s",
		componentID, stored.FetchedAt.Format("2006-01-02T15:04:05Z07:00"))
	return stored.Availability, nil
}

// Refresh force-fetches a snapshot from the provider and stores it. Unlike
// GetAvailability it does not fall back to stored data: a refresh that
// cannot reach the provider is a failure.
func (s *Service) Refresh(ctx context.Context, componentID string, window domain.TimeRange) (*domain.BookingAvailability, error) {
	fetchedAt := s.timeProvider.Now()

	fresh, err := s.client.FetchReservationTerms(ctx, componentID, window, "")
	if err != nil {
		if errors.Is(err, availabilityClient.ErrComponentNotFound) {
			return nil, ErrComponentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if err := s.repo.Upsert(ctx, fresh, fetchedAt); err != nil {
		return nil, fmt.Errorf("%w: failed to store snapshot: %v", ErrInternal, err)
	}

	return fresh, nil
}
