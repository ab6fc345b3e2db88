package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-LabBookingService/internal/service/bookings/models"
)

const (
	msgMissingUser = "имя пользователя обязательно"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: user (required), system (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	occupant := r.URL.Query().Get("user")
	systemID := r.URL.Query().Get("system")
	if systemID == "" {
		systemID = domain.DefaultSystemID
	}

	serviceReq := &models.GetUserBookingsRequest{
		SystemID: systemID,
		Occupant: occupant,
	}

	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrMissingField):
			h.logger.Warn("GET /bookings - Missing user name: system=%s", systemID)
			handlers.RespondBadRequest(w, msgMissingUser)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: system=%s, user=%s, error=%v",
				systemID, occupant, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: system=%s, user=%s, count=%d",
		systemID, occupant, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
