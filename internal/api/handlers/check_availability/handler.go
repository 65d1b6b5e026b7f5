package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
)

const (
	msgInvalidPeriod = "некорректный период, ожидаются startDate и endDate в формате YYYY-MM-DD"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &checkAvailability.Request{
		RoomID:    mux.Vars(r)["roomId"],
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: %v", err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidPeriod, map[string]any{
				"reason": err.Error(),
			})

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%s, error=%v",
				req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
