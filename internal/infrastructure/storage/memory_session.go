package storage

import (
	"context"
	"sync"

	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
	"github.com/yourusername/telegram-deals-bot/internal/domain/repository"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]entity.SessionState
}

// NewMemorySessionRepository creates an in-memory session repository.
// Sessions live for the process lifetime; a restart loses them, which is
// the documented behaviour of the default setup.
func NewMemorySessionRepository() repository.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[int64]entity.SessionState),
	}
}

func (m *memorySessionRepository) Get(ctx context.Context, chatID int64) (*entity.SessionState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.sessions[chatID]
	if !exists {
		return nil, entity.ErrNoSession
	}
	return &state, nil
}

func (m *memorySessionRepository) Put(ctx context.Context, chatID int64, state entity.SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Overwrite, never merge
	m.sessions[chatID] = state
	return nil
}

func (m *memorySessionRepository) SetEditing(ctx context.Context, chatID int64, field entity.EditField) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, exists := m.sessions[chatID]
	if !exists {
		return entity.ErrNoSession
	}
	state.Editing = entity.EditAwaitingValue
	state.EditingField = field
	m.sessions[chatID] = state
	return nil
}

func (m *memorySessionRepository) ClearEditing(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, exists := m.sessions[chatID]
	if !exists {
		return entity.ErrNoSession
	}
	state.Editing = entity.EditIdle
	state.EditingField = ""
	m.sessions[chatID] = state
	return nil
}

func (m *memorySessionRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}
