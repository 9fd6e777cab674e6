package marketplace

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// flipkartExtractor selector rules for flipkart.com product pages.
// Class names are build artifacts and break whenever Flipkart ships a new
// frontend bundle.
type flipkartExtractor struct{}

func (flipkartExtractor) Title(doc *goquery.Document) (string, bool) {
	sel := doc.Find(".B_NuCI").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (flipkartExtractor) Image(doc *goquery.Document) (string, bool) {
	sel := doc.Find("._396cs4, .CXW8mj img").First()
	if sel.Length() == 0 {
		return "", false
	}
	if src, ok := sel.Attr("src"); ok && src != "" {
		return src, true
	}
	return "", false
}

func (flipkartExtractor) Price(doc *goquery.Document) (string, bool) {
	sel := doc.Find("._30jeq3._16Jk6d").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (flipkartExtractor) MRP(doc *goquery.Document) (string, bool) {
	sel := doc.Find("._3I9_wc._2p6lqe").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (flipkartExtractor) Discount(doc *goquery.Document) (string, bool) {
	sel := doc.Find("._3Ay6Sb._31Dcoz").First()
	if sel.Length() == 0 {
		return "", false
	}
	text := strings.TrimSpace(sel.Text())
	text = strings.TrimPrefix(text, "-")
	if text == "" {
		return "", false
	}
	return text, true
}

func (flipkartExtractor) PromoCode(doc *goquery.Document) (string, bool) {
	sel := doc.Find("._16eBzU span").First()
	if sel.Length() == 0 {
		return "", false
	}
	code := strings.TrimSpace(sel.Text())
	if code == "" {
		return "", false
	}
	return code, true
}
