package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// Client retrieves raw product page markup. Extraction never happens here:
// the extractor only ever sees "markup in, record out".
type Client struct {
	http *resty.Client
}

// NewClient creates a page fetcher with a bounded timeout and a browser
// user agent (marketplaces serve bot-detected clients a useless page)
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultFetchTimeout
	}
	http := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", constants.FetchUserAgent)
	return &Client{http: http}
}

// Page fetches the markup of a product page. Transport errors and non-2xx
// statuses are both reported as entity.ErrFetchFailed.
func (c *Client) Page(ctx context.Context, url string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrFetchFailed, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", fmt.Errorf("%w: status %d", entity.ErrFetchFailed, resp.StatusCode())
	}
	return string(resp.Body()), nil
}
