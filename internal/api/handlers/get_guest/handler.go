package get_guest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/guests"
)

const (
	msgInvalidNationalID = "некорректный национальный ID"
	msgNotFound          = "гость не найден"
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

// Handle GET /api/v1/guests/{nationalId}
// Используется формой бронирования для автозаполнения имени и телефона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	nationalID := mux.Vars(r)["nationalId"]

	guest, err := h.service.GetGuestByNationalID(r.Context(), nationalID)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidNationalID)

		case errors.Is(err, guests.ErrGuestNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /guests/{nationalId} - Failed to get guest: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, guest)
}
