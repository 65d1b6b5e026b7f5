package check_availability

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// RoomRepository интерфейс каталога номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	AvailabilityChecked(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
