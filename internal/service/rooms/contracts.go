package rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// RoomRepository интерфейс каталога номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetWithFilter(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
