package get_date_bounds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/airjam-co/booking-resolver/internal/domain"
	availabilityService "github.com/airjam-co/booking-resolver/internal/service/availability"
	"github.com/airjam-co/booking-resolver/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubAvailability struct {
	snapshot *domain.BookingAvailability
	err      error
}

func (s *stubAvailability) GetAvailability(ctx context.Context, componentID string, window domain.TimeRange) (*domain.BookingAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func utc(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMinSelectableDate(t *testing.T) {
	now := utc(2026, 3, 10)

	t.Run("past selection allowed means no lower bound", func(t *testing.T) {
		resource := &domain.BookingResource{AllowPastDateSelection: true}
		assert.Nil(t, minSelectableDate(resource, now))
	})

	t.Run("defaults to now", func(t *testing.T) {
		resource := &domain.BookingResource{}
		min := minSelectableDate(resource, now)
		assert.NotNil(t, min)
		assert.Equal(t, now, *min)
	})

	t.Run("future availability start pushes the bound", func(t *testing.T) {
		resource := &domain.BookingResource{AvailabilityStartTimeUTC: utc(2026, 4, 1)}
		min := minSelectableDate(resource, now)
		assert.NotNil(t, min)
		assert.Equal(t, utc(2026, 4, 1), *min)
	})

	t.Run("past availability start is ignored", func(t *testing.T) {
		resource := &domain.BookingResource{AvailabilityStartTimeUTC: utc(2026, 2, 1)}
		min := minSelectableDate(resource, now)
		assert.NotNil(t, min)
		assert.Equal(t, now, *min)
	})
}

func TestMaxSelectableDate(t *testing.T) {
	now := utc(2026, 3, 10)

	t.Run("unbounded policy", func(t *testing.T) {
		resource := &domain.BookingResource{
			ReservableUntil: domain.ReservableUntilPolicy{Type: domain.ReservableIndefinitely},
		}
		assert.Nil(t, maxSelectableDate(resource, now))
	})

	t.Run("rolling window", func(t *testing.T) {
		resource := &domain.BookingResource{
			ReservableUntil: domain.ReservableUntilPolicy{
				Type:   domain.ReservableUntilDuration,
				Amount: 2,
				Unit:   domain.DurationUnitWeek,
			},
		}
		max := maxSelectableDate(resource, now)
		assert.NotNil(t, max)
		assert.Equal(t, utc(2026, 3, 24), *max)
	})
}

func TestDisabledDatesInWindow(t *testing.T) {
	now := utc(2026, 3, 10)
	resource := &domain.BookingResource{
		ID:       "cabin",
		Timezone: "UTC",
		Unit:     domain.UnitDaily,
		UnavailableTimes: []domain.TimeRange{
			{StartTimeUTC: utc(2026, 3, 14), EndTimeUTC: utc(2026, 3, 14)},
		},
	}

	minDate := minSelectableDate(resource, now)
	maxDate := ptr.Ptr(utc(2026, 3, 16))

	disabled := disabledDatesInWindow(resource, utc(2026, 3, 8), utc(2026, 3, 18), minDate, maxDate)

	// March 8-9 precede "now", March 14 is excluded, March 17-18 exceed the max
	assert.Equal(t, []time.Time{
		utc(2026, 3, 8),
		utc(2026, 3, 9),
		utc(2026, 3, 14),
		utc(2026, 3, 17),
		utc(2026, 3, 18),
	}, disabled)
}

func TestDisabledDatesInWindow_UnknownDaysStaySelectable(t *testing.T) {
	// No availability data and no exclusions: the picker defaults every
	// in-bounds date to selectable
	resource := &domain.BookingResource{
		ID:                     "cabin",
		Timezone:               "UTC",
		Unit:                   domain.UnitDaily,
		AllowPastDateSelection: true,
	}

	disabled := disabledDatesInWindow(resource, utc(2026, 3, 8), utc(2026, 3, 18), nil, nil)
	assert.Empty(t, disabled)
}

func TestUseCase_Execute(t *testing.T) {
	now := utc(2026, 3, 10)
	resource := &domain.BookingResource{
		ID:       "cabin",
		Timezone: "UTC",
		Unit:     domain.UnitDaily,
		ReservableUntil: domain.ReservableUntilPolicy{
			Type:   domain.ReservableUntilDuration,
			Amount: 1,
			Unit:   domain.DurationUnitMonth,
		},
		UnavailableTimes: []domain.TimeRange{
			{StartTimeUTC: utc(2026, 3, 14), EndTimeUTC: utc(2026, 3, 14)},
		},
	}
	snapshot := &domain.BookingAvailability{
		ComponentID: "cmp-1",
		Resources:   []*domain.BookingResource{resource},
	}

	newUseCase := func(svc AvailabilityService) *UseCase {
		uc := NewUseCase(svc, testLogger{})
		uc.timeProvider = fixedTime{now: now}
		return uc
	}

	t.Run("computes bounds and exclusions", func(t *testing.T) {
		uc := newUseCase(&stubAvailability{snapshot: snapshot})

		resp, err := uc.Execute(context.Background(), &Request{
			ComponentID: "cmp-1",
			ResourceID:  "cabin",
			WindowStart: utc(2026, 3, 10),
			WindowEnd:   utc(2026, 3, 20),
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp.MinDate)
		assert.Equal(t, now, *resp.MinDate)
		assert.NotNil(t, resp.MaxDate)
		assert.Equal(t, utc(2026, 4, 10), *resp.MaxDate)
		assert.Equal(t, []time.Time{utc(2026, 3, 14)}, resp.DisabledDates)
	})

	t.Run("window defaults to a month from now", func(t *testing.T) {
		uc := newUseCase(&stubAvailability{snapshot: snapshot})

		resp, err := uc.Execute(context.Background(), &Request{
			ComponentID: "cmp-1",
			ResourceID:  "cabin",
		})

		assert.NoError(t, err)
		assert.Contains(t, resp.DisabledDates, utc(2026, 3, 14))
	})

	t.Run("oversized window rejected", func(t *testing.T) {
		uc := newUseCase(&stubAvailability{snapshot: snapshot})

		_, err := uc.Execute(context.Background(), &Request{
			ComponentID: "cmp-1",
			ResourceID:  "cabin",
			WindowStart: utc(2026, 1, 1),
			WindowEnd:   utc(2028, 1, 1),
		})

		assert.ErrorIs(t, err, ErrWindowTooLarge)
	})

	t.Run("unknown resource", func(t *testing.T) {
		uc := newUseCase(&stubAvailability{snapshot: snapshot})

		_, err := uc.Execute(context.Background(), &Request{
			ComponentID: "cmp-1",
			ResourceID:  "boat",
		})

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("component not found", func(t *testing.T) {
		uc := newUseCase(&stubAvailability{err: availabilityService.ErrComponentNotFound})

		_, err := uc.Execute(context.Background(), &Request{
			ComponentID: "ghost",
			ResourceID:  "cabin",
		})

		assert.ErrorIs(t, err, ErrComponentNotFound)
	})

	t.Run("missing resource id", func(t *testing.T) {
		uc := newUseCase(&stubAvailability{snapshot: snapshot})

		_, err := uc.Execute(context.Background(), &Request{ComponentID: "cmp-1"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
