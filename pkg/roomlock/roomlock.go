package roomlock

import (
	"context"
	"sync"
)

// Manager сериализует операции над бронированиями одного номера.
// Операции над разными номерами выполняются параллельно.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*roomLock
}

type roomLock struct {
	mu   sync.Mutex
	refs int
}

// NewManager создает новый менеджер блокировок
func NewManager() *Manager {
	return &Manager{
		locks: make(map[string]*roomLock),
	}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой номера roomID.
// Проверка доступности и вставка бронирования внутри fn выполняются атомарно
// относительно других вызовов для того же номера.
func (m *Manager) DoSerializable(ctx context.Context, roomID string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := m.acquire(roomID)
	defer m.release(roomID, lock)

	return fn(ctx)
}

func (m *Manager) acquire(roomID string) *roomLock {
	m.mu.Lock()
	lock, ok := m.locks[roomID]
	if !ok {
		lock = &roomLock{}
		m.locks[roomID] = lock
	}
	lock.refs++
	m.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (m *Manager) release(roomID string, lock *roomLock) {
	lock.mu.Unlock()

	m.mu.Lock()
	lock.refs--
	// Удаляем запись, когда номер больше никто не ждет, чтобы map не рос бесконечно
	if lock.refs == 0 {
		delete(m.locks, roomID)
	}
	m.mu.Unlock()
}

// size возвращает количество удерживаемых записей (для тестов)
func (m *Manager) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
