package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-LabBookingService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "не заполнены обязательные поля"
	msgSlotAlreadyBooked  = "слот уже забронирован"
	msgInvalidSlot        = "слот отсутствует в расписании системы"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrMissingField):
			h.logger.Warn("POST /bookings - Missing fields: system=%s, date=%s, slot=%s",
				req.System, req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, bookSlot.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: system=%s, slot=%s", req.System, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: system=%s, date=%s, slot=%s",
				req.System, req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to book slot: system=%s, date=%s, slot=%s, error=%v",
				req.System, req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Slot booked successfully: system=%s, date=%s, slot=%s, name=%s",
		result.SystemID, result.Date, result.Slot, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, BookSlotResponse{Success: true})
}
