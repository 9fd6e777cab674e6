package repository

import (
	"context"

	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// SessionRepository stores one SessionState per chat. Put overwrites without
// merging; nothing is deleted, a session lives for the process lifetime
// (or longer with a persistent backend).
type SessionRepository interface {
	// Get returns the session for a chat, or entity.ErrNoSession
	Get(ctx context.Context, chatID int64) (*entity.SessionState, error)

	// Put creates or overwrites the session for a chat
	Put(ctx context.Context, chatID int64, state entity.SessionState) error

	// SetEditing marks which field the chat is currently editing
	SetEditing(ctx context.Context, chatID int64, field entity.EditField) error

	// ClearEditing resets the edit cursor to idle
	ClearEditing(ctx context.Context, chatID int64) error

	// Count returns the number of stored sessions
	Count(ctx context.Context) (int, error)
}
