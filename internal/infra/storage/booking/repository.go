package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Repository in-memory хранилище бронирований
// Сохраняет порядок вставки; наружу отдаются только копии записей
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
	byRoom   map[string][]*domain.Booking
	now      func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository() *Repository {
	return &Repository{
		bookings: make([]*domain.Booking, 0),
		byID:     make(map[string]*domain.Booking),
		byRoom:   make(map[string][]*domain.Booking),
		now:      time.Now,
	}
}

// Create сохраняет новое бронирование, присваивая ему ID и время создания.
// Проверку пересечений репозиторий не выполняет: это задача вызывающего кода,
// который держит блокировку номера (см. usecase create_booking).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if booking.RoomID == "" || booking.GuestID == "" {
		return nil, fmt.Errorf("%w: Create - room and guest are required", ErrInvalidBooking)
	}

	stored := *booking
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.now().UTC()

	r.mu.Lock()
	r.bookings = append(r.bookings, &stored)
	r.byID[stored.ID] = &stored
	r.byRoom[stored.RoomID] = append(r.byRoom[stored.RoomID], &stored)
	r.mu.Unlock()

	result := stored
	return &result, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	result := *booking
	return &result, nil
}

// GetWithFilter получает бронирования с фильтрацией по номеру и периоду
// Порядок - порядок вставки
//
// Примеры использования:
//
//  1. Все бронирования:
//     filter := domain.BookingsFilter{}
//
//  2. Бронирования номера:
//     filter := domain.BookingsFilter{RoomID: ptr.Ptr("room-id")}
//
//  3. Бронирования номера, пересекающиеся с периодом (проверка доступности):
//     filter := domain.BookingsFilter{RoomID: ptr.Ptr("room-id"), Period: &period}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	source := r.bookings
	if filter.RoomID != nil {
		source = r.byRoom[*filter.RoomID]
	}

	result := make([]*domain.Booking, 0)
	for _, booking := range source {
		if !filter.Matches(booking) {
			continue
		}
		copied := *booking
		result = append(result, &copied)
	}

	return result, nil
}
