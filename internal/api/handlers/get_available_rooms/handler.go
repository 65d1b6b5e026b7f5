package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_available_rooms"
)

const (
	msgInvalidFilter = "некорректные параметры поиска номеров"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?category=&startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid filter: %v", err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidFilter, map[string]any{
				"reason": err.Error(),
			})

		default:
			h.logger.Error("GET /rooms/available - Failed to get rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
