package repository

import (
	"context"
	"time"
)

// PublishedPost is one audit entry for a post sent to the broadcast channel
type PublishedPost struct {
	ID            string
	ChatID        int64
	Title         string
	AffiliateLink string
	CreatedAt     time.Time
}

// PostLogRepository records every post published to the channel
type PostLogRepository interface {
	Save(ctx context.Context, post PublishedPost) error
	Count(ctx context.Context) (int, error)
}
