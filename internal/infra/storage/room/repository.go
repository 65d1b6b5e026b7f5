package room

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Repository in-memory каталог номеров
// Заполняется один раз при старте (Add), дальше используется только на чтение
type Repository struct {
	mu       sync.RWMutex
	rooms    []*domain.Room
	byID     map[string]*domain.Room
	byNumber map[string]struct{}
}

// NewRepository создает пустой каталог номеров
func NewRepository() *Repository {
	return &Repository{
		rooms:    make([]*domain.Room, 0),
		byID:     make(map[string]*domain.Room),
		byNumber: make(map[string]struct{}),
	}
}

// Add добавляет номер в каталог (только на этапе инициализации)
func (r *Repository) Add(room domain.Room) error {
	if room.ID == "" || room.RoomNumber == "" {
		return fmt.Errorf("%w: id and room number are required", ErrInvalidRoom)
	}
	if !room.Category.IsValid() {
		return fmt.Errorf("%w: room %s has unknown category %q", ErrInvalidRoom, room.RoomNumber, room.Category)
	}
	if room.Beds <= 0 {
		return fmt.Errorf("%w: room %s must have at least one bed", ErrInvalidRoom, room.RoomNumber)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[room.ID]; ok {
		return fmt.Errorf("%w: id=%s", ErrDuplicateRoom, room.ID)
	}
	if _, ok := r.byNumber[room.RoomNumber]; ok {
		return fmt.Errorf("%w: number=%s", ErrDuplicateRoom, room.RoomNumber)
	}

	stored := room
	r.rooms = append(r.rooms, &stored)
	r.byID[stored.ID] = &stored
	r.byNumber[stored.RoomNumber] = struct{}{}

	return nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.byID[id]
	if !ok {
		return nil, ErrRoomNotFound
	}

	result := *room
	return &result, nil
}

// GetWithFilter возвращает номера в порядке добавления с учетом фильтра
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if !filter.Matches(room) {
			continue
		}
		copied := *room
		result = append(result, &copied)
	}

	return result, nil
}
