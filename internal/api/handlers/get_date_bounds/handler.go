package get_date_bounds

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/airjam-co/booking-resolver/internal/api/handlers"
	getDateBounds "github.com/airjam-co/booking-resolver/internal/usecase/get_date_bounds"
)

const (
	msgMissingIDs        = "component id and resource id are required"
	msgInvalidWindow     = "invalid window date format, expected YYYY-MM-DD"
	msgWindowTooLarge    = "query window too large"
	msgComponentNotFound = "component not found"
	msgResourceNotFound  = "resource not found"
)

type Handler struct {
	useCase GetDateBoundsUseCase
	logger  Logger
}

func NewHandler(useCase GetDateBoundsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/components/{componentId}/resources/{resourceId}/date-bounds
// Query params: windowStart, windowEnd (YYYY-MM-DD, default to a month
// starting today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	componentID := vars["componentId"]
	resourceID := vars["resourceId"]
	if componentID == "" || resourceID == "" {
		h.logger.Warn("GET /components/{id}/resources/{rid}/date-bounds - Missing identifiers")
		handlers.RespondBadRequest(w, msgMissingIDs)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(componentID, resourceID, query.Get("windowStart"), query.Get("windowEnd"))
	if err != nil {
		h.logger.Warn("GET /components/{id}/resources/{rid}/date-bounds - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDateBounds.ErrInvalidInput):
			h.logger.Warn("GET /components/{id}/resources/{rid}/date-bounds - Invalid input: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getDateBounds.ErrWindowTooLarge):
			h.logger.Warn("GET /components/{id}/resources/{rid}/date-bounds - Window too large: component_id=%s, resource_id=%s",
				componentID, resourceID)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, getDateBounds.ErrComponentNotFound):
			h.logger.Warn("GET /components/{id}/resources/{rid}/date-bounds - Component not found: component_id=%s", componentID)
			handlers.RespondNotFound(w, msgComponentNotFound)

		case errors.Is(err, getDateBounds.ErrResourceNotFound):
			h.logger.Warn("GET /components/{id}/resources/{rid}/date-bounds - Resource not found: component_id=%s, resource_id=%s",
				componentID, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /components/{id}/resources/{rid}/date-bounds - Failed to compute bounds: component_id=%s, resource_id=%s, error=%v",
				componentID, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /components/{id}/resources/{rid}/date-bounds - Bounds computed: component_id=%s, resource_id=%s, disabled_dates=%d",
		componentID, resourceID, len(result.DisabledDates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
