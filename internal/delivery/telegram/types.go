package telegram

import "regexp"

// Callback payloads
const (
	callbackEditCaption   = "edit_caption"
	callbackBackToPreview = "back_to_preview"
	callbackSendToChannel = "send_to_channel"

	// Field edits travel as "edit_<field>"
	callbackEditFieldPrefix = "edit_"
)

// marketplaceURLPattern matches product links of the supported marketplaces
var marketplaceURLPattern = regexp.MustCompile(`(?i)(https?://)?(www\.)?(amazon|flipkart)\.(in|com)/`)

// anyURLPattern detects that a message carried some link at all
var anyURLPattern = regexp.MustCompile(`https?://`)

// User-facing texts
const (
	msgWelcome = "Welcome to Affiliate Link Generator Bot!\n\n" +
		"Send me an Amazon or Flipkart product URL, and I'll convert it to an affiliate link " +
		"and generate a formatted post for your channel."

	msgProcessing = "Processing your product link..."

	msgFetchFailed = "Sorry, I couldn't fetch the product details. Please check if the URL is valid."

	msgNotProductURL = "This doesn't look like an Amazon or Flipkart URL. Please send a valid product link."

	msgUsageHelp = "Please send an Amazon or Flipkart product URL to generate an affiliate link and post."

	msgSessionExpired = "Session expired. Please send the product link again."

	msgEditSessionExpired = "Session expired. Please start over."

	msgPostedToChannel = "✅ Post has been sent to the channel successfully!"
)
