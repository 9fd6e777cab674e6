package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
)

// Marketplace identifies the source e-commerce site of a product URL
type Marketplace string

const (
	MarketplaceAmazon   Marketplace = "amazon"
	MarketplaceFlipkart Marketplace = "flipkart"
	MarketplaceUnknown  Marketplace = "unknown"
)

// EditField names a ProductRecord field the user may overwrite from the edit menu
type EditField string

const (
	FieldTitle           EditField = "title"
	FieldOfferPrice      EditField = "offer_price"
	FieldMRP             EditField = "mrp"
	FieldDiscountAmount  EditField = "discount_amount"
	FieldDiscountPercent EditField = "discount_percent"
	FieldPromoCode       EditField = "promo_code"
)

// EditFields is the fixed menu order of editable fields
var EditFields = []EditField{
	FieldTitle,
	FieldOfferPrice,
	FieldMRP,
	FieldDiscountAmount,
	FieldDiscountPercent,
	FieldPromoCode,
}

// Label returns a human readable name, e.g. "Offer Price"
func (f EditField) Label() string {
	parts := strings.Split(string(f), "_")
	for i, p := range parts {
		if p == "mrp" {
			parts[i] = "MRP"
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// IsValidEditField reports whether raw names a known editable field
func IsValidEditField(raw string) bool {
	for _, f := range EditFields {
		if string(f) == raw {
			return true
		}
	}
	return false
}

// ProductRecord is one scraped product ready to be posted.
// Every field except ImageURL and PromoCode always carries a value: the
// sentinel constants stand in for data the page did not expose, so
// formatting code never has to deal with missing keys.
type ProductRecord struct {
	Title           string
	ImageURL        string
	OfferPrice      string
	MRP             string
	DiscountAmount  string
	DiscountPercent string
	AffiliateLink   string
	PromoCode       string
}

// NewProductRecord returns a record with every field at its sentinel default
func NewProductRecord(affiliateLink string) ProductRecord {
	return ProductRecord{
		Title:           constants.TitleNotFound,
		OfferPrice:      constants.ValueNotAvailable,
		MRP:             constants.ValueNotAvailable,
		DiscountAmount:  constants.ValueNotAvailable,
		DiscountPercent: constants.ValueNotAvailable,
		AffiliateLink:   affiliateLink,
	}
}

// Field returns the current value of an editable field
func (r *ProductRecord) Field(f EditField) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldOfferPrice:
		return r.OfferPrice
	case FieldMRP:
		return r.MRP
	case FieldDiscountAmount:
		return r.DiscountAmount
	case FieldDiscountPercent:
		return r.DiscountPercent
	case FieldPromoCode:
		return r.PromoCode
	}
	return ""
}

// SetField overwrites an editable field verbatim
func (r *ProductRecord) SetField(f EditField, value string) {
	switch f {
	case FieldTitle:
		r.Title = value
	case FieldOfferPrice:
		r.OfferPrice = value
	case FieldMRP:
		r.MRP = value
	case FieldDiscountAmount:
		r.DiscountAmount = value
	case FieldDiscountPercent:
		r.DiscountPercent = value
	case FieldPromoCode:
		r.PromoCode = value
	}
}

// ParsePrice strips the currency symbol and thousands separators and parses
// the remainder as a number. ok is false for sentinel or malformed text.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == constants.ValueNotAvailable {
		return 0, false
	}
	s = strings.ReplaceAll(s, constants.CurrencySymbol, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// DeriveDiscount fills DiscountAmount/DiscountPercent from the two prices.
// Both prices must parse as positive numbers with MRP above the offer,
// otherwise the fields are left untouched. A percentage already shown on the
// page wins over the derived one; the amount is still derived in that case.
func (r *ProductRecord) DeriveDiscount() {
	offer, okOffer := ParsePrice(r.OfferPrice)
	mrp, okMRP := ParsePrice(r.MRP)
	if !okOffer || !okMRP || mrp <= offer {
		return
	}

	amount := mrp - offer
	r.DiscountAmount = fmt.Sprintf("%s%.0f", constants.CurrencySymbol, amount)
	if r.DiscountPercent == constants.ValueNotAvailable {
		r.DiscountPercent = fmt.Sprintf("%.0f%% off", amount/mrp*100)
	}
}

// EditState is the explicit edit cursor of a session
type EditState int

const (
	// EditIdle no field edit in progress
	EditIdle EditState = iota

	// EditAwaitingValue the next free-text message is the new field value
	EditAwaitingValue
)

// SessionState is the active product record of one chat plus its edit cursor.
// One per chat, last-write-wins, never expires on its own.
type SessionState struct {
	Record       ProductRecord
	Editing      EditState
	EditingField EditField
}
