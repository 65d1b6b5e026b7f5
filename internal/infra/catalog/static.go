package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// StaticRoom описание номера из файла конфигурации
type StaticRoom struct {
	ID       string
	Number   string
	Category string
	Beds     int
}

// StaticSource номера, перечисленные в конфигурации
type StaticSource struct {
	rooms []StaticRoom
}

func NewStaticSource(rooms []StaticRoom) *StaticSource {
	return &StaticSource{rooms: rooms}
}

// Rooms возвращает номера в порядке объявления.
// Номерам без ID присваивается новый UUID.
func (s *StaticSource) Rooms(_ context.Context) ([]domain.Room, error) {
	result := make([]domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		result = append(result, domain.Room{
			ID:         id,
			RoomNumber: r.Number,
			Category:   domain.RoomCategory(r.Category),
			Beds:       r.Beds,
		})
	}
	return result, nil
}
