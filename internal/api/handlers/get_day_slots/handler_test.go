package get_day_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/airjam-co/booking-resolver/internal/domain"
	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp    *resolveSlots.Response
	err     error
	lastReq *resolveSlots.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *resolveSlots.Request) (*resolveSlots.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newRouter(uc ResolveSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	handler := NewHandler(uc, testLogger{})
	r.HandleFunc("/api/v1/components/{componentId}/slots", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("returns resolved slots", func(t *testing.T) {
		uc := &stubUseCase{resp: &resolveSlots.Response{
			ComponentID: "cmp-1",
			Day:         day,
			Resources: []resolveSlots.ResourceSlots{
				{
					ResourceID:   "room-a",
					ResourceName: "Room A",
					Unit:         domain.UnitFlexible,
					Step:         resolveSlots.StepSelectStart,
					Slots: []resolveSlots.Slot{
						{
							StartTimeUTC:    day.Add(9 * time.Hour),
							EndTimeUTC:      day.Add(9*time.Hour + 30*time.Minute),
							DurationMinutes: 30,
						},
					},
				},
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/components/cmp-1/slots?date=2026-03-10", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body DaySlotsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "cmp-1", body.ComponentID)
		assert.Equal(t, "2026-03-10", body.Date)
		assert.Len(t, body.Resources, 1)
		assert.Equal(t, "select_start", body.Resources[0].Step)
		assert.Len(t, body.Resources[0].Slots, 1)

		assert.Equal(t, "cmp-1", uc.lastReq.ComponentID)
		assert.Equal(t, day, uc.lastReq.Day)
		assert.Nil(t, uc.lastReq.AnchorStartTimeUTC)
	})

	t.Run("parses the anchor parameter", func(t *testing.T) {
		uc := &stubUseCase{resp: &resolveSlots.Response{ComponentID: "cmp-1", Day: day}}

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/components/cmp-1/slots?date=2026-03-10&resourceId=room-a&anchorStartTimeUtc=2026-03-10T09:00:00Z", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "room-a", uc.lastReq.ResourceID)
		assert.NotNil(t, uc.lastReq.AnchorStartTimeUTC)
		assert.Equal(t, day.Add(9*time.Hour), *uc.lastReq.AnchorStartTimeUTC)
	})

	t.Run("malformed date", func(t *testing.T) {
		uc := &stubUseCase{}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/components/cmp-1/slots?date=10-03-2026", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.lastReq)
	})

	t.Run("component not found", func(t *testing.T) {
		uc := &stubUseCase{err: resolveSlots.ErrComponentNotFound}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/components/ghost/slots", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("resource not found", func(t *testing.T) {
		uc := &stubUseCase{err: resolveSlots.ErrResourceNotFound}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/components/cmp-1/slots?resourceId=room-z", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal failure", func(t *testing.T) {
		uc := &stubUseCase{err: errors.New("boom")}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/components/cmp-1/slots", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
