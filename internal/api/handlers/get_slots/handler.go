package get_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	getSlots "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_slots"
)

const (
	msgMissingDate = "дата обязательна"
)

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), system (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	systemID := r.URL.Query().Get("system")

	// Формируем запрос к use case (с подстановкой системы по умолчанию)
	useCaseReq := ToUseCaseRequest(systemID, date)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrMissingField):
			h.logger.Warn("GET /slots - Missing date: system=%s", useCaseReq.SystemID)
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: system=%s, date=%s, error=%v",
				useCaseReq.SystemID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: system=%s, date=%s, slots_count=%d",
		result.SystemID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
