package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/telegram-deals-bot/internal/domain/repository"
)

type memoryPostLogRepository struct {
	mu    sync.RWMutex
	posts []repository.PublishedPost
}

// NewMemoryPostLogRepository creates an in-memory publish audit log
func NewMemoryPostLogRepository() repository.PostLogRepository {
	return &memoryPostLogRepository{
		posts: make([]repository.PublishedPost, 0, 64),
	}
}

func (m *memoryPostLogRepository) Save(ctx context.Context, post repository.PublishedPost) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return nil
}

func (m *memoryPostLogRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.posts), nil
}
