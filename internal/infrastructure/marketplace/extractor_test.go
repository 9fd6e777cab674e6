package marketplace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

const amazonPage = `
<!DOCTYPE html>
<html>
<body>
	<span id="productTitle">  Test Wireless Headphones with Noise Cancellation  </span>
	<img id="landingImage" src="https://m.media-amazon.com/images/I/headphones.jpg"/>
	<span class="a-price"><span class="a-offscreen">₹1,999</span></span>
	<span class="a-text-price"><span class="a-offscreen">₹2,999</span></span>
</body>
</html>`

const flipkartPage = `
<!DOCTYPE html>
<html>
<body>
	<span class="B_NuCI">Test Phone 128GB Storage Midnight Black</span>
	<img class="_396cs4" src="https://rukminim2.flixcart.com/image/phone.jpg"/>
	<div class="_30jeq3 _16Jk6d">₹11,999</div>
	<div class="_3I9_wc _2p6lqe">₹15,999</div>
	<div class="_3Ay6Sb _31Dcoz">-25% off</div>
	<div class="_16eBzU"><span>DEAL25</span></div>
</body>
</html>`

func TestExtractAmazon(t *testing.T) {
	record, err := Extract(entity.MarketplaceAmazon, amazonPage, "https://www.amazon.in/dp/B0TEST?tag=mytag-21")
	require.NoError(t, err)

	assert.Equal(t, "Test Wireless Headphones with Noise Cancellation", record.Title)
	assert.Equal(t, "https://m.media-amazon.com/images/I/headphones.jpg", record.ImageURL)
	assert.Equal(t, "₹1999", record.OfferPrice)
	assert.Equal(t, "₹2999", record.MRP)
	assert.Equal(t, "₹1000", record.DiscountAmount)
	assert.Equal(t, "33% off", record.DiscountPercent)
	assert.Equal(t, "https://www.amazon.in/dp/B0TEST?tag=mytag-21", record.AffiliateLink)
	assert.Empty(t, record.PromoCode)
}

func TestExtractAmazonDynamicImage(t *testing.T) {
	page := `<html><body>
		<img id="landingImage" data-a-dynamic-image='{"https://m.media-amazon.com/images/I/dyn.jpg":[500,500]}'/>
	</body></html>`

	record, err := Extract(entity.MarketplaceAmazon, page, "link")
	require.NoError(t, err)
	assert.Equal(t, "https://m.media-amazon.com/images/I/dyn.jpg", record.ImageURL)
}

func TestExtractFlipkart(t *testing.T) {
	record, err := Extract(entity.MarketplaceFlipkart, flipkartPage, "https://www.flipkart.com/p/itm1?affid=myaffid")
	require.NoError(t, err)

	assert.Equal(t, "Test Phone 128GB Storage Midnight Black", record.Title)
	assert.Equal(t, "https://rukminim2.flixcart.com/image/phone.jpg", record.ImageURL)
	assert.Equal(t, "₹11999", record.OfferPrice)
	assert.Equal(t, "₹15999", record.MRP)
	// Displayed percentage is preserved; amount is still derived
	assert.Equal(t, "25% off", record.DiscountPercent)
	assert.Equal(t, "₹4000", record.DiscountAmount)
	assert.Equal(t, "DEAL25", record.PromoCode)
}

func TestExtractFieldMissesKeepSentinels(t *testing.T) {
	record, err := Extract(entity.MarketplaceAmazon, "<html><body><p>captcha page</p></body></html>", "link")
	require.NoError(t, err, "field-level misses are not extraction failures")

	assert.Equal(t, "Product Title Not Found", record.Title)
	assert.Equal(t, "N/A", record.OfferPrice)
	assert.Equal(t, "N/A", record.MRP)
	assert.Equal(t, "N/A", record.DiscountAmount)
	assert.Equal(t, "N/A", record.DiscountPercent)
	assert.Empty(t, record.ImageURL)
	assert.Empty(t, record.PromoCode)
	assert.Equal(t, "link", record.AffiliateLink)
}

func TestExtractPartialPage(t *testing.T) {
	// Title present, prices missing: only the title is overlaid
	page := `<html><body><span id="productTitle">Just A Title</span></body></html>`
	record, err := Extract(entity.MarketplaceAmazon, page, "link")
	require.NoError(t, err)

	assert.Equal(t, "Just A Title", record.Title)
	assert.Equal(t, "N/A", record.OfferPrice)
}

func TestTruncateTitle(t *testing.T) {
	long := strings.Repeat("A", 69) + " tail that goes past the limit"
	got := TruncateTitle(long, 70)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 73)
	assert.NotContains(t, got, " ...", "trailing whitespace must be trimmed before the ellipsis")

	short := "Short title"
	assert.Equal(t, short, TruncateTitle(short, 70))
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"₹1,999", "₹1999"},
		{"1,999", "₹1999"},
		{"  499  ", "₹499"},
		{"₹499", "₹499"},
		{"", "N/A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePrice(tt.in), "input: %q", tt.in)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(entity.MarketplaceAmazon))
	assert.True(t, Supported(entity.MarketplaceFlipkart))
	assert.False(t, Supported(entity.MarketplaceUnknown))
}
