package submit_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/airjam-co/booking-resolver/internal/api/handlers"
	submitBooking "github.com/airjam-co/booking-resolver/internal/usecase/submit_booking"
)

const (
	msgMissingComponentID = "component id is required"
	msgInvalidBody        = "invalid request body"
	msgComponentNotFound  = "component not found"
	msgResourceNotFound   = "resource not found"
	msgSlotNotOffered     = "selected slot is no longer offered"
	msgBookingRejected    = "booking was rejected by the reservation provider"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/components/{componentId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	componentID := vars["componentId"]
	if componentID == "" {
		h.logger.Warn("POST /components/{id}/bookings - Missing component ID")
		handlers.RespondBadRequest(w, msgMissingComponentID)
		return
	}

	var body BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /components/{id}/bookings - Invalid body: component_id=%s, error=%v", componentID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), body.ToUseCaseRequest(componentID))
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /components/{id}/bookings - Invalid input: component_id=%s, error=%v", componentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, submitBooking.ErrComponentNotFound):
			h.logger.Warn("POST /components/{id}/bookings - Component not found: component_id=%s", componentID)
			handlers.RespondNotFound(w, msgComponentNotFound)

		case errors.Is(err, submitBooking.ErrResourceNotFound):
			h.logger.Warn("POST /components/{id}/bookings - Resource not found: component_id=%s, resource_id=%s",
				componentID, body.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, submitBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /components/{id}/bookings - Slot not offered: component_id=%s, resource_id=%s, start=%s, end=%s",
				componentID, body.ResourceID, body.StartTimeUTC, body.EndTimeUTC)
			handlers.RespondConflict(w, msgSlotNotOffered)

		case errors.Is(err, submitBooking.ErrBookingRejected):
			h.logger.Warn("POST /components/{id}/bookings - Rejected by provider: component_id=%s, resource_id=%s",
				componentID, body.ResourceID)
			handlers.RespondConflict(w, msgBookingRejected)

		default:
			h.logger.Error("POST /components/{id}/bookings - Failed to submit booking: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /components/{id}/bookings - Booking submitted: component_id=%s, resource_id=%s, reservation_id=%s",
		componentID, body.ResourceID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
