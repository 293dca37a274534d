package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/airjam-co/booking-resolver/internal/api/handlers"
	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

const (
	msgMissingComponentID = "component id is required"
	msgInvalidParams      = "invalid date or anchor format, expected YYYY-MM-DD and RFC3339"
	msgComponentNotFound  = "component not found"
	msgResourceNotFound   = "resource not found"
)

type Handler struct {
	useCase ResolveSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/components/{componentId}/slots
// Query params: date (YYYY-MM-DD, defaults to today), resourceId (optional),
// anchorStartTimeUtc (RFC3339, optional; switches flexible resources to
// end-time selection)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	componentID := vars["componentId"]
	if componentID == "" {
		h.logger.Warn("GET /components/{id}/slots - Missing component ID")
		handlers.RespondBadRequest(w, msgMissingComponentID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(componentID, query.Get("resourceId"), query.Get("date"), query.Get("anchorStartTimeUtc"))
	if err != nil {
		h.logger.Warn("GET /components/{id}/slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSlots.ErrInvalidInput):
			h.logger.Warn("GET /components/{id}/slots - Invalid input: component_id=%s, error=%v", componentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, resolveSlots.ErrComponentNotFound):
			h.logger.Warn("GET /components/{id}/slots - Component not found: component_id=%s", componentID)
			handlers.RespondNotFound(w, msgComponentNotFound)

		case errors.Is(err, resolveSlots.ErrResourceNotFound):
			h.logger.Warn("GET /components/{id}/slots - Resource not found: component_id=%s, resource_id=%s",
				componentID, useCaseReq.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /components/{id}/slots - Failed to resolve slots: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /components/{id}/slots - Slots resolved: component_id=%s, resources=%d",
		componentID, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, response)
}
