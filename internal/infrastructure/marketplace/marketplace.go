package marketplace

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

var flipkartProductPattern = regexp.MustCompile(`/p/([a-zA-Z0-9]+)`)

// Classify identifies the marketplace of a product URL by domain substring.
// Amazon is checked first; a URL can never match both.
func Classify(rawURL string) entity.Marketplace {
	lower := strings.ToLower(rawURL)
	if strings.Contains(lower, "amazon") {
		return entity.MarketplaceAmazon
	}
	if strings.Contains(lower, "flipkart") {
		return entity.MarketplaceFlipkart
	}
	return entity.MarketplaceUnknown
}

// Rewriter builds affiliate-tagged product URLs from raw marketplace URLs
type Rewriter struct {
	AmazonTag           string
	FlipkartAffiliateID string
	// FlipkartEnabled is false while the affiliate id is still the placeholder
	FlipkartEnabled bool
}

// Rewrite converts a product URL into its affiliate equivalent. When the
// product id cannot be extracted (or the Flipkart credential is not
// configured) the original URL is returned unchanged.
func (r *Rewriter) Rewrite(rawURL string) string {
	switch Classify(rawURL) {
	case entity.MarketplaceAmazon:
		if asin := ExtractAmazonASIN(rawURL); asin != "" {
			return fmt.Sprintf("https://www.amazon.in/dp/%s?tag=%s", asin, r.AmazonTag)
		}
	case entity.MarketplaceFlipkart:
		if id := ExtractFlipkartID(rawURL); id != "" && r.FlipkartEnabled {
			return fmt.Sprintf("https://www.flipkart.com/p/%s?affid=%s", id, r.FlipkartAffiliateID)
		}
	}
	return rawURL
}

// ExtractAmazonASIN pulls the product id out of an Amazon URL: the path
// segment following "dp", or the ASIN query parameter as a fallback.
func ExtractAmazonASIN(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !strings.Contains(strings.ToLower(parsed.Host), "amazon") {
		return ""
	}

	parts := strings.Split(parsed.Path, "/")
	for i, part := range parts {
		if part == "dp" && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1]
		}
	}

	if asin := parsed.Query().Get("ASIN"); asin != "" {
		return asin
	}
	return ""
}

// ExtractFlipkartID pulls the product id out of a Flipkart URL via the
// /p/<id> path pattern.
func ExtractFlipkartID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !strings.Contains(strings.ToLower(parsed.Host), "flipkart") {
		return ""
	}

	if m := flipkartProductPattern.FindStringSubmatch(parsed.Path); m != nil {
		return m[1]
	}
	return ""
}
