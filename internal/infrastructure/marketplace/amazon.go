package marketplace

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// amazonExtractor selector rules for amazon.in product pages.
// Amazon rotates its price markup frequently, hence the candidate lists.
type amazonExtractor struct{}

func (amazonExtractor) Title(doc *goquery.Document) (string, bool) {
	sel := doc.Find("#productTitle").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (amazonExtractor) Image(doc *goquery.Document) (string, bool) {
	sel := doc.Find("#landingImage, #imgBlkFront").First()
	if sel.Length() == 0 {
		return "", false
	}
	if src, ok := sel.Attr("src"); ok && src != "" {
		return src, true
	}
	// Fallback: the candidate sizes live in a JSON attribute keyed by URL
	if raw, ok := sel.Attr("data-a-dynamic-image"); ok {
		var sizes map[string][]float64
		if err := json.Unmarshal([]byte(raw), &sizes); err == nil {
			for imageURL := range sizes {
				return imageURL, true
			}
		}
	}
	return "", false
}

func (amazonExtractor) Price(doc *goquery.Document) (string, bool) {
	sel := doc.Find(".a-price .a-offscreen, .a-price-whole").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (amazonExtractor) MRP(doc *goquery.Document) (string, bool) {
	sel := doc.Find(`.a-text-price .a-offscreen, .a-text-price span[aria-hidden="true"]`).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (amazonExtractor) Discount(doc *goquery.Document) (string, bool) {
	// Amazon pages carry no reliable standalone discount element; the
	// percentage is derived from the two prices instead
	return "", false
}

func (amazonExtractor) PromoCode(doc *goquery.Document) (string, bool) {
	return "", false
}
