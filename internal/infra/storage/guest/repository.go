package guest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Repository in-memory хранилище гостей с уникальностью по национальному ID
type Repository struct {
	mu           sync.RWMutex
	guests       []*domain.Guest
	byID         map[string]*domain.Guest
	byNationalID map[string]*domain.Guest
	now          func() time.Time
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository() *Repository {
	return &Repository{
		guests:       make([]*domain.Guest, 0),
		byID:         make(map[string]*domain.Guest),
		byNationalID: make(map[string]*domain.Guest),
		now:          time.Now,
	}
}

// Upsert находит гостя по национальному ID и обновляет имя и телефон (last-write-wins),
// либо создает нового гостя с новым ID. Вся операция выполняется под одной блокировкой,
// поэтому два одновременных вызова с одним национальным ID не создадут дубликат.
// Второе возвращаемое значение - true, если гость был создан.
func (r *Repository) Upsert(ctx context.Context, nationalID, name, phone string) (*domain.Guest, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if nationalID == "" {
		return nil, false, ErrEmptyNationalID
	}

	now := r.now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byNationalID[nationalID]; ok {
		existing.Name = name
		existing.Phone = phone
		existing.UpdatedAt = now

		result := *existing
		return &result, false, nil
	}

	guest := &domain.Guest{
		ID:         uuid.NewString(),
		NationalID: nationalID,
		Name:       name,
		Phone:      phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.guests = append(r.guests, guest)
	r.byID[guest.ID] = guest
	r.byNationalID[nationalID] = guest

	result := *guest
	return &result, true, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	guest, ok := r.byID[id]
	if !ok {
		return nil, ErrGuestNotFound
	}

	result := *guest
	return &result, nil
}

// GetByNationalID получает гостя по национальному ID
func (r *Repository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	guest, ok := r.byNationalID[nationalID]
	if !ok {
		return nil, ErrGuestNotFound
	}

	result := *guest
	return &result, nil
}

// GetAll возвращает снимок всех гостей
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Guest, 0, len(r.guests))
	for _, guest := range r.guests {
		copied := *guest
		result = append(result, &copied)
	}

	return result, nil
}
