package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
	"github.com/yourusername/telegram-deals-bot/internal/usecase"
)

// previewMarkup is the three-action keyboard attached to every preview
func previewMarkup(affiliateLink string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🛒 Buy Now", affiliateLink),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Edit Caption", callbackEditCaption),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Send to Channel", callbackSendToChannel),
		),
	)
}

// editMenuMarkup lists one entry per editable field plus a back action
func editMenuMarkup() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entity.EditFields)+1)
	for _, field := range entity.EditFields {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Edit "+field.Label(), callbackEditFieldPrefix+string(field)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Back", callbackBackToPreview),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buyOnlyMarkup is the keyboard of the published channel post
func buyOnlyMarkup(affiliateLink string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🛒 Buy Now", affiliateLink),
		),
	)
}

// sendPreview sends the full preview to the requesting chat: photo with
// caption when an image was found, plain text otherwise
func (h *BotHandler) sendPreview(chatID int64, record entity.ProductRecord) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}

	caption := usecase.FormatPost(record)
	markup := previewMarkup(record.AffiliateLink)

	if record.ImageURL != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(record.ImageURL))
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeMarkdown
		photo.ReplyMarkup = markup
		if _, err := h.bot.Send(photo); err != nil {
			return err
		}
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, caption)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = markup
	if _, err := h.bot.Send(msg); err != nil {
		return err
	}
	return nil
}

// updatePreviewMessage re-renders an existing preview message in place.
// Photo previews carry the post as a caption, text previews as the body.
func (h *BotHandler) updatePreviewMessage(message *tgbotapi.Message, record entity.ProductRecord) error {
	if h.bot == nil || message == nil || message.Chat == nil {
		return fmt.Errorf("telegram bot is nil")
	}

	caption := usecase.FormatPost(record)
	markup := previewMarkup(record.AffiliateLink)

	if len(message.Photo) > 0 {
		edit := tgbotapi.NewEditMessageCaption(message.Chat.ID, message.MessageID, caption)
		edit.ParseMode = tgbotapi.ModeMarkdown
		edit.ReplyMarkup = &markup
		_, err := h.bot.Request(edit)
		return err
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(message.Chat.ID, message.MessageID, caption, markup)
	edit.ParseMode = tgbotapi.ModeMarkdown
	_, err := h.bot.Request(edit)
	return err
}
