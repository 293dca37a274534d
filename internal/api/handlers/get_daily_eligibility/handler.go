package get_daily_eligibility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/airjam-co/booking-resolver/internal/api/handlers"
	checkDailyEligibility "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
)

const (
	msgMissingComponentID = "component id is required"
	msgMissingDates       = "startDate and endDate are required"
	msgInvalidDates       = "invalid date format, expected YYYY-MM-DD"
	msgComponentNotFound  = "component not found"
)

type Handler struct {
	useCase CheckDailyEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckDailyEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/components/{componentId}/daily-eligibility
// Query params: startDate (required, YYYY-MM-DD), endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	componentID := vars["componentId"]
	if componentID == "" {
		h.logger.Warn("GET /components/{id}/daily-eligibility - Missing component ID")
		handlers.RespondBadRequest(w, msgMissingComponentID)
		return
	}

	query := r.URL.Query()
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /components/{id}/daily-eligibility - Missing dates: component_id=%s", componentID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(componentID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /components/{id}/daily-eligibility - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkDailyEligibility.ErrInvalidInput):
			h.logger.Warn("GET /components/{id}/daily-eligibility - Invalid input: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, checkDailyEligibility.ErrComponentNotFound):
			h.logger.Warn("GET /components/{id}/daily-eligibility - Component not found: component_id=%s", componentID)
			handlers.RespondNotFound(w, msgComponentNotFound)

		default:
			h.logger.Error("GET /components/{id}/daily-eligibility - Failed to check eligibility: component_id=%s, error=%v",
				componentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /components/{id}/daily-eligibility - Eligibility checked: component_id=%s, resources=%d",
		componentID, len(result.Eligibility))
	handlers.RespondJSON(w, http.StatusOK, response)
}
