package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

const roomsTable = "rooms"

// PostgresSource читает номера из таблицы rooms. Каталог только читается:
// бронирования и гости в базе не хранятся.
type PostgresSource struct {
	db Querier
}

func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// roomsQuery строит SELECT по таблице номеров
func roomsQuery() (string, []interface{}, error) {
	return psqlbuilder.Select("id", "room_number", "category", "beds").
		From(roomsTable).
		Where("active = ?", true).
		OrderBy("room_number").
		ToSql()
}

// Rooms возвращает активные номера, упорядоченные по номеру комнаты
func (s *PostgresSource) Rooms(ctx context.Context) ([]domain.Room, error) {
	query, args, err := roomsQuery()
	if err != nil {
		return nil, fmt.Errorf("Rooms - build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Rooms - query: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var (
			room     domain.Room
			category string
		)
		if err := rows.Scan(&room.ID, &room.RoomNumber, &category, &room.Beds); err != nil {
			return nil, fmt.Errorf("Rooms - scan: %w", err)
		}
		room.Category = domain.RoomCategory(category)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Rooms - rows: %w", err)
	}

	return rooms, nil
}
