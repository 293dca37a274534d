package refresh_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/airjam-co/booking-resolver/internal/api/handlers"
	availabilityService "github.com/airjam-co/booking-resolver/internal/service/availability"
)

const (
	msgMissingComponentID  = "component id is required"
	msgInvalidWindow       = "invalid window timestamps, expected RFC3339"
	msgWindowInverted      = "window end must be after window start"
	msgComponentNotFound   = "component not found"
	msgProviderUnavailable = "reservation provider is unavailable"
)

type Handler struct {
	service      AvailabilityRefresher
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service AvailabilityRefresher, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle POST /api/v1/components/{componentId}/availability/refresh
// Query params: startTimeUtc, endTimeUtc (RFC3339, default now..now+31d)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	componentID := vars["componentId"]
	if componentID == "" {
		h.logger.Warn("POST /components/{id}/availability/refresh - Missing component ID")
		handlers.RespondBadRequest(w, msgMissingComponentID)
		return
	}

	query := r.URL.Query()
	window, err := ParseWindow(query.Get("startTimeUtc"), query.Get("endTimeUtc"), h.timeProvider.Now())
	if err != nil {
		h.logger.Warn("POST /components/{id}/availability/refresh - Invalid window: component_id=%s, error=%v",
			componentID, err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}
	if !window.EndTimeUTC.After(window.StartTimeUTC) {
		h.logger.Warn("POST /components/{id}/availability/refresh - Inverted window: component_id=%s", componentID)
		handlers.RespondBadRequest(w, msgWindowInverted)
		return
	}

	result, err := h.service.Refresh(r.Context(), componentID, window)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrComponentNotFound):
			h.logger.Warn("POST /components/{id}/availability/refresh - Component not found: component_id=%s", componentID)
			handlers.RespondNotFound(w, msgComponentNotFound)

		case errors.Is(err, availabilityService.ErrProviderUnavailable):
			h.logger.Error("POST /components/{id}/availability/refresh - Provider unavailable: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondServiceUnavailable(w, msgProviderUnavailable)

		default:
			h.logger.Error("POST /components/{id}/availability/refresh - Failed to refresh: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /components/{id}/availability/refresh - Snapshot refreshed: component_id=%s, resources=%d",
		componentID, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, &RefreshResponse{
		ComponentID:  result.ComponentID,
		Resources:    len(result.Resources),
		StartTimeUTC: window.StartTimeUTC,
		EndTimeUTC:   window.EndTimeUTC,
	})
}
