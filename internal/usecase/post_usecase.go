package usecase

import (
	"context"
	"log"

	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
	"github.com/yourusername/telegram-deals-bot/internal/infrastructure/marketplace"
)

// PageFetcher retrieves raw page markup for a product URL
type PageFetcher interface {
	Page(ctx context.Context, url string) (string, error)
}

// PostUseCase turns a raw marketplace URL into a ProductRecord ready for
// preview: classify, rewrite to an affiliate link, fetch the page, extract.
type PostUseCase interface {
	ProcessURL(ctx context.Context, rawURL string) (entity.ProductRecord, error)
}

type postUseCase struct {
	fetcher  PageFetcher
	rewriter *marketplace.Rewriter
}

// NewPostUseCase creates a PostUseCase
func NewPostUseCase(fetcher PageFetcher, rewriter *marketplace.Rewriter) PostUseCase {
	return &postUseCase{
		fetcher:  fetcher,
		rewriter: rewriter,
	}
}

// ProcessURL builds the product record for one URL. ErrNotProductURL for an
// unsupported marketplace, ErrFetchFailed-wrapped errors for page retrieval;
// individual selector misses never surface here.
func (u *postUseCase) ProcessURL(ctx context.Context, rawURL string) (entity.ProductRecord, error) {
	m := marketplace.Classify(rawURL)
	if !marketplace.Supported(m) {
		return entity.ProductRecord{}, entity.ErrNotProductURL
	}

	affiliateURL := u.rewriter.Rewrite(rawURL)

	markup, err := u.fetcher.Page(ctx, rawURL)
	if err != nil {
		log.Printf("fetch failed for %s: %v", rawURL, err)
		return entity.ProductRecord{}, err
	}

	record, err := marketplace.Extract(m, markup, affiliateURL)
	if err != nil {
		log.Printf("extract failed for %s: %v", rawURL, err)
		return entity.ProductRecord{}, err
	}
	return record, nil
}
