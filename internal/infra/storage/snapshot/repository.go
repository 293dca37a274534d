package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/airjam-co/booking-resolver/internal/domain"
	"github.com/airjam-co/booking-resolver/pkg/dbmetrics"
	"github.com/airjam-co/booking-resolver/pkg/psqlbuilder"
)

// StoredSnapshot is an availability snapshot together with its fetch time
type StoredSnapshot struct {
	Availability *domain.BookingAvailability
	FetchedAt    time.Time
}

// Repository stores the latest availability snapshot per component.
// Exactly one row is kept per component; replacement is last-write-wins on
// fetched_at, so a slow response from an older provider query can never
// overwrite a fresher snapshot.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a snapshot repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert stores a snapshot, replacing any stored snapshot that was fetched
// earlier. Writes with a fetched_at older than the stored row are silently
// discarded.
func (r *Repository) Upsert(ctx context.Context, availability *domain.BookingAvailability, fetchedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(availability)
	if err != nil {
		return fmt.Errorf("%w: Upsert - marshal snapshot: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Insert("availability_snapshots").
		Columns("component_id", "payload", "fetched_at").
		Values(availability.ComponentID, payload, fetchedAt).
		Suffix(`ON CONFLICT (component_id) DO UPDATE
			SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
			WHERE availability_snapshots.fetched_at <= EXCLUDED.fetched_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetLatest returns the stored snapshot for a component
func (r *Repository) GetLatest(ctx context.Context, componentID string) (*StoredSnapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("payload", "fetched_at").
		From("availability_snapshots").
		Where(squirrel.Eq{"component_id": componentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	var fetchedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - execute select: %v", ErrExecQuery, err)
	}

	var availability domain.BookingAvailability
	if err := json.Unmarshal(payload, &availability); err != nil {
		return nil, fmt.Errorf("%w: GetLatest - unmarshal snapshot: %v", ErrDecodePayload, err)
	}

	return &StoredSnapshot{Availability: &availability, FetchedAt: fetchedAt}, nil
}

// Delete removes the stored snapshot for a component
func (r *Repository) Delete(ctx context.Context, componentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_snapshots").
		Where(squirrel.Eq{"component_id": componentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
