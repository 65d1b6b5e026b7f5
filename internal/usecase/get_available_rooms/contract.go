package get_available_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// RoomRepository интерфейс каталога номеров
type RoomRepository interface {
	GetWithFilter(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
