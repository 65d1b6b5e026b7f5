package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
)

const (
	msgInvalidCategory = "неизвестная категория номера"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRoomsRequest{}
	if q := r.URL.Query(); q.Has("category") {
		category := q.Get("category")
		req.Category = &category
	}

	result, err := h.service.ListRooms(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
