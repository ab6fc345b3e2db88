package get_names

import (
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/names
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.ListNames(r.Context())
	if err != nil {
		h.logger.Error("GET /names - Failed to list names: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /names - Names retrieved successfully: count=%d", len(names))
	handlers.RespondJSON(w, http.StatusOK, names)
}
