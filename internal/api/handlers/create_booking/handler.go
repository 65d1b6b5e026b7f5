package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRoomNotAvailable   = "номер занят на выбранные даты"
	msgRoomNotFound       = "номер не найден"
	msgGuestNotFound      = "гость не найден"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var conflict *createBooking.ConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Room not available: room_id=%s, conflicting_booking_id=%s",
				conflict.RoomID, conflict.BookingID)
			handlers.RespondConflict(w, msgRoomNotAvailable, map[string]any{
				"roomId":    conflict.RoomID,
				"bookingId": conflict.BookingID,
				"startDate": conflict.Start.String(),
				"endDate":   conflict.End.String(),
			})

		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: room_id=%s", req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable, nil)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, msgInvalidInput, map[string]any{
				"reason": err.Error(),
			})

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%s", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s",
		result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
