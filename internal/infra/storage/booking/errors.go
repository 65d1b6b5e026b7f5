package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrInvalidBooking возвращается при попытке сохранить неполное бронирование
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")
)
