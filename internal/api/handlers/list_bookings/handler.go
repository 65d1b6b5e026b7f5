package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации, даты ожидаются в формате YYYY-MM-DD"
	msgRoomNotFound  = "номер не найден"
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

// Handle GET /api/v1/bookings?roomId=&startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToServiceRequest(r.URL.Query())

	result, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidFilter, map[string]any{
				"reason": err.Error(),
			})

		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("GET /bookings - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
