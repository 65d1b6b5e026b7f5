package guests

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// GuestRepository интерфейс реестра гостей
type GuestRepository interface {
	Upsert(ctx context.Context, nationalID, name, phone string) (*domain.Guest, bool, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Guest, error)
	GetAll(ctx context.Context) ([]*domain.Guest, error)
}

// Validator интерфейс валидации структур по тегам
type Validator interface {
	Struct(s interface{}) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	GuestCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
