package constants

import "time"

// Sentinel values used instead of nullable fields
const (
	// TitleNotFound placeholder when no title selector matched
	TitleNotFound = "Product Title Not Found"

	// ValueNotAvailable placeholder for missing prices/discounts
	ValueNotAvailable = "N/A"
)

// Extraction constants
const (
	// MaxTitleLength caption limit for the preview title
	MaxTitleLength = 70

	// CurrencySymbol prefix applied to bare numeric prices
	CurrencySymbol = "₹"

	// FetchUserAgent desktop UA; product pages serve a stripped layout to unknown clients
	FetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultFetchTimeout product page fetch budget
	DefaultFetchTimeout = 15 * time.Second
)

// Affiliate constants
const (
	// FlipkartPlaceholderAffiliateID rewrite is skipped while this sentinel is configured
	FlipkartPlaceholderAffiliateID = "YOUR_FLIPKART_AFFILIATE_ID"

	// DefaultAmazonAffiliateTag fallback tag when env is empty
	DefaultAmazonAffiliateTag = "yourtag-21"

	// DefaultChannelID fallback broadcast destination
	DefaultChannelID = "@your_deals_channel"
)

// Polling supervisor constants
const (
	// PollTimeoutSeconds long-poll timeout passed to Telegram
	PollTimeoutSeconds = 60

	// MaxPollRetries consecutive failures before the process gives up
	MaxPollRetries = 10

	// ReadTimeoutRetryDelay short fixed delay after a read timeout
	ReadTimeoutRetryDelay = 3 * time.Second

	// ConnectionErrorRetryDelay longer fixed delay after a connection error
	ConnectionErrorRetryDelay = 10 * time.Second

	// RetryBackoffStep progressive backoff step for unclassified errors
	RetryBackoffStep = 5 * time.Second

	// MaxRetryBackoff cap for the progressive backoff
	MaxRetryBackoff = 30 * time.Second
)
