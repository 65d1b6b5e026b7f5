package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RoomRepository интерфейс каталога номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// GuestRepository интерфейс реестра гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	Upsert(ctx context.Context, nationalID, name, phone string) (*domain.Guest, bool, error)
}

// RoomLocker интерфейс для сериализации операций над одним номером
type RoomLocker interface {
	DoSerializable(ctx context.Context, roomID string, fn func(ctx context.Context) error) error
}

// Validator интерфейс валидации структур по тегам
type Validator interface {
	Struct(s interface{}) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingCreated(category string)
	BookingConflict()
	GuestCreated()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
