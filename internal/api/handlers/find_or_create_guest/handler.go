package find_or_create_guest

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/guests"
	"github.com/m04kA/SMC-HotelBooking/internal/service/guests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные гостя"
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

// Handle POST /api/v1/guests
// 201 если гость создан, 200 если найден существующий и обновлен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FindOrCreateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.FindOrCreateGuest(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("POST /guests - Invalid input: %v", err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidInput, map[string]any{
				"reason": err.Error(),
			})

		default:
			h.logger.Error("POST /guests - Failed to find or create guest: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /guests - Guest resolved: guest_id=%s, created=%t", result.GuestID, result.Created)
	handlers.RespondJSON(w, status, result)
}
