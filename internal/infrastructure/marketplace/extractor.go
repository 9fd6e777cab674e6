package marketplace

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// Extractor is the per-marketplace capability set. Each lookup is
// independent: returning ok=false leaves the field at its sentinel default
// and never aborts the rest of the record.
type Extractor interface {
	Title(doc *goquery.Document) (string, bool)
	Image(doc *goquery.Document) (string, bool)
	Price(doc *goquery.Document) (string, bool)
	MRP(doc *goquery.Document) (string, bool)
	Discount(doc *goquery.Document) (string, bool)
	PromoCode(doc *goquery.Document) (string, bool)
}

// registry maps a marketplace to its extractor. Supporting a new site means
// registering a new Extractor here, not branching in Extract.
var registry = map[entity.Marketplace]Extractor{
	entity.MarketplaceAmazon:   amazonExtractor{},
	entity.MarketplaceFlipkart: flipkartExtractor{},
}

// Supported reports whether an extractor is registered for the marketplace
func Supported(m entity.Marketplace) bool {
	_, ok := registry[m]
	return ok
}

// Extract builds a ProductRecord from fetched page markup. The record starts
// with every field at its sentinel default and is overlaid with whatever the
// marketplace extractor could locate. Only an unparseable document is an
// error; individual selector misses are silent.
func Extract(m entity.Marketplace, markup, affiliateURL string) (entity.ProductRecord, error) {
	record := entity.NewProductRecord(affiliateURL)

	ex, ok := registry[m]
	if !ok {
		return record, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return record, err
	}

	if title, ok := ex.Title(doc); ok {
		record.Title = TruncateTitle(title, constants.MaxTitleLength)
	}
	if image, ok := ex.Image(doc); ok {
		record.ImageURL = image
	}
	if price, ok := ex.Price(doc); ok {
		record.OfferPrice = NormalizePrice(price)
	}
	if mrp, ok := ex.MRP(doc); ok {
		record.MRP = NormalizePrice(mrp)
	}
	if discount, ok := ex.Discount(doc); ok {
		record.DiscountPercent = discount
	}
	if promo, ok := ex.PromoCode(doc); ok {
		record.PromoCode = promo
	}

	record.DeriveDiscount()
	return record, nil
}

// TruncateTitle bounds the title for photo captions, appending an ellipsis
// when it had to cut
func TruncateTitle(title string, maxLength int) string {
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) <= maxLength {
		return title
	}
	return strings.TrimRight(string(runes[:maxLength]), " \t\n") + "..."
}

// NormalizePrice trims the raw selector text, strips thousands separators
// and prefixes the currency symbol when the page omitted it
func NormalizePrice(raw string) string {
	price := strings.TrimSpace(raw)
	if price == "" {
		return constants.ValueNotAvailable
	}
	price = strings.ReplaceAll(price, ",", "")
	if !strings.HasPrefix(price, constants.CurrencySymbol) {
		price = constants.CurrencySymbol + price
	}
	return price
}
