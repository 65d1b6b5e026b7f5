package catalog

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Source источник номеров, читаемый один раз при старте
type Source interface {
	Rooms(ctx context.Context) ([]domain.Room, error)
}

// RoomWriter каталог, в который загружаются номера
type RoomWriter interface {
	Add(room domain.Room) error
}

// Querier выполняет SELECT (реализуется *sql.DB)
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
