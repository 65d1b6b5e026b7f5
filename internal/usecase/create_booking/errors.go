package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/pkg/types"
)

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrGuestNotFound возвращается, когда указанный guestId не найден
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrRoomNotAvailable возвращается, когда номер уже занят на часть запрошенного периода
	ErrRoomNotAvailable = errors.New("create_booking: room is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError описывает бронирование, с которым пересекается запрошенный период.
// errors.Is(err, ErrRoomNotAvailable) для него возвращает true.
type ConflictError struct {
	RoomID    string
	BookingID string
	Start     types.Date // заезд существующего бронирования
	End       types.Date // выезд существующего бронирования, не включается
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: room=%s is booked from %s to %s (booking id=%s)",
		ErrRoomNotAvailable, e.RoomID, e.Start, e.End, e.BookingID)
}

func (e *ConflictError) Unwrap() error {
	return ErrRoomNotAvailable
}
