package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	availabilityClient "github.com/airjam-co/booking-resolver/internal/integrations/availability"
	checkDailyEligibility "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubResolver struct {
	resp *resolveSlots.Response
	err  error
}

func (s *stubResolver) Execute(ctx context.Context, req *resolveSlots.Request) (*resolveSlots.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubEligibility struct {
	resp *checkDailyEligibility.Response
	err  error
}

func (s *stubEligibility) Execute(ctx context.Context, req *checkDailyEligibility.Request) (*checkDailyEligibility.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubProvider struct {
	resp        *availabilityClient.BookingResponse
	err         error
	lastRequest availabilityClient.BookingRequest
	calls       int
}

func (s *stubProvider) BookReservation(ctx context.Context, componentID string, request availabilityClient.BookingRequest) (*availabilityClient.BookingResponse, error) {
	s.calls++
	s.lastRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func utc(year int, month time.Month, d, h, m int) time.Time {
	return time.Date(year, month, d, h, m, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		ComponentID:  "cmp-1",
		ResourceID:   "room-a",
		StartTimeUTC: utc(2026, 3, 10, 9, 0),
		EndTimeUTC:   utc(2026, 3, 10, 10, 0),
		Timezone:     "UTC",
		Name:         "Dana",
		Email:        "dana@example.com",
	}
}

func offeredResponse() *resolveSlots.Response {
	return &resolveSlots.Response{
		ComponentID: "cmp-1",
		Resources: []resolveSlots.ResourceSlots{
			{
				ResourceID: "room-a",
				Step:       resolveSlots.StepSelectEnd,
				Slots: []resolveSlots.Slot{
					{StartTimeUTC: utc(2026, 3, 10, 9, 0), EndTimeUTC: utc(2026, 3, 10, 10, 0), DurationMinutes: 60},
					{StartTimeUTC: utc(2026, 3, 10, 9, 0), EndTimeUTC: utc(2026, 3, 10, 10, 30), DurationMinutes: 90},
				},
			},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("forwards an offered selection", func(t *testing.T) {
		provider := &stubProvider{resp: &availabilityClient.BookingResponse{ReservationID: "rsv-1", Message: "confirmed"}}
		uc := NewUseCase(&stubResolver{resp: offeredResponse()}, &stubEligibility{}, provider, testLogger{})

		resp, err := uc.Execute(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "rsv-1", resp.ReservationID)
		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, "room-a", provider.lastRequest.ResourceID)
		assert.Equal(t, utc(2026, 3, 10, 9, 0), provider.lastRequest.StartTimeUTC)
	})

	t.Run("rejects an interval that is not offered", func(t *testing.T) {
		provider := &stubProvider{}
		uc := NewUseCase(&stubResolver{resp: offeredResponse()}, &stubEligibility{}, provider, testLogger{})

		req := validRequest()
		req.EndTimeUTC = utc(2026, 3, 10, 11, 0)

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrSlotNotOffered)
		assert.Zero(t, provider.calls)
	})

	t.Run("daily resource is validated through eligibility", func(t *testing.T) {
		// A daily-unit resource never appears in day-slot resolution output
		resolver := &stubResolver{resp: &resolveSlots.Response{ComponentID: "cmp-1", Resources: []resolveSlots.ResourceSlots{}}}
		eligibility := &stubEligibility{resp: &checkDailyEligibility.Response{
			Eligibility: map[string]bool{"room-a": true},
		}}
		provider := &stubProvider{resp: &availabilityClient.BookingResponse{ReservationID: "rsv-2"}}
		uc := NewUseCase(resolver, eligibility, provider, testLogger{})

		resp, err := uc.Execute(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "rsv-2", resp.ReservationID)
	})

	t.Run("ineligible daily range is rejected", func(t *testing.T) {
		resolver := &stubResolver{resp: &resolveSlots.Response{Resources: []resolveSlots.ResourceSlots{}}}
		eligibility := &stubEligibility{resp: &checkDailyEligibility.Response{
			Eligibility: map[string]bool{"room-a": false},
		}}
		provider := &stubProvider{}
		uc := NewUseCase(resolver, eligibility, provider, testLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSlotNotOffered)
		assert.Zero(t, provider.calls)
	})

	t.Run("provider rejection maps to booking rejected", func(t *testing.T) {
		provider := &stubProvider{err: availabilityClient.ErrBookingRejected}
		uc := NewUseCase(&stubResolver{resp: offeredResponse()}, &stubEligibility{}, provider, testLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrBookingRejected)
	})

	t.Run("resolver component not found", func(t *testing.T) {
		uc := NewUseCase(&stubResolver{err: resolveSlots.ErrComponentNotFound}, &stubEligibility{}, &stubProvider{}, testLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrComponentNotFound)
	})

	t.Run("resolver resource not found", func(t *testing.T) {
		uc := NewUseCase(&stubResolver{err: resolveSlots.ErrResourceNotFound}, &stubEligibility{}, &stubProvider{}, testLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("resolver failure wraps internal error", func(t *testing.T) {
		uc := NewUseCase(&stubResolver{err: errors.New("boom")}, &stubEligibility{}, &stubProvider{}, testLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing component id", func(r *Request) { r.ComponentID = "" }},
		{"missing resource id", func(r *Request) { r.ResourceID = "" }},
		{"missing start time", func(r *Request) { r.StartTimeUTC = time.Time{} }},
		{"missing end time", func(r *Request) { r.EndTimeUTC = time.Time{} }},
		{"end not after start", func(r *Request) { r.EndTimeUTC = r.StartTimeUTC }},
		{"missing name", func(r *Request) { r.Name = "" }},
		{"missing email", func(r *Request) { r.Email = "" }},
		{"malformed email", func(r *Request) { r.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(validRequest()))
}
