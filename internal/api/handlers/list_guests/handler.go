package list_guests

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAllGuests(r.Context())
	if err != nil {
		h.logger.Error("GET /guests - Failed to list guests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
