package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// FormatPost renders a product record into the channel post caption.
// Pure function: the same record always renders to the same string, so the
// preview can be re-rendered after every edit.
func FormatPost(record entity.ProductRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n\n", record.Title)
	fmt.Fprintf(&b, "*Offer Price:* %s\n", record.OfferPrice)
	fmt.Fprintf(&b, "*MRP:* %s\n", record.MRP)

	hasAmount := record.DiscountAmount != constants.ValueNotAvailable
	hasPercent := record.DiscountPercent != constants.ValueNotAvailable
	switch {
	case hasAmount && hasPercent:
		fmt.Fprintf(&b, "*Save* %s (%s)\n", record.DiscountAmount, record.DiscountPercent)
	case hasPercent:
		fmt.Fprintf(&b, "*Save* (%s)\n", record.DiscountPercent)
	case hasAmount:
		fmt.Fprintf(&b, "_Save %s_ 🔥\n", record.DiscountAmount)
	}

	if record.PromoCode != "" {
		fmt.Fprintf(&b, "\n🎟️ Apply Coupon!: %s", record.PromoCode)
	}

	return b.String()
}
