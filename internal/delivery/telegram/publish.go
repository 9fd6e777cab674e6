package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
	"github.com/yourusername/telegram-deals-bot/internal/domain/repository"
	"github.com/yourusername/telegram-deals-bot/internal/usecase"
)

// handleSendToChannel publishes the previewed record. A publish failure
// leaves the session untouched so the user can fix permissions and retry.
func (h *BotHandler) handleSendToChannel(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64) {
	state, err := h.sessions.Get(ctx, chatID)
	if err != nil {
		h.answerCallback(cq.ID, msgSessionExpired)
		return
	}

	if err := h.publishToChannel(state.Record); err != nil {
		h.answerCallback(cq.ID, "Failed to post to channel.")
		h.sendMessage(chatID, fmt.Sprintf(
			"❌ Failed to post to channel: %v\n\nPlease check if the bot has admin rights in the channel and the channel ID is correct.", err))
		return
	}

	h.answerCallback(cq.ID, "Successfully posted to channel!")
	h.sendMessage(chatID, msgPostedToChannel)

	if err := h.postLog.Save(ctx, repository.PublishedPost{
		ID:            uuid.NewString(),
		ChatID:        chatID,
		Title:         state.Record.Title,
		AffiliateLink: state.Record.AffiliateLink,
	}); err != nil {
		log.Printf("failed to record published post: %v", err)
	}
}

// publishToChannel sends the record to the broadcast destination with a
// single Buy Now button
func (h *BotHandler) publishToChannel(record entity.ProductRecord) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}

	caption := usecase.FormatPost(record)
	markup := buyOnlyMarkup(record.AffiliateLink)

	if record.ImageURL != "" {
		var photo tgbotapi.PhotoConfig
		if h.channelName != "" {
			photo = tgbotapi.NewPhotoToChannel(h.channelName, tgbotapi.FileURL(record.ImageURL))
		} else {
			photo = tgbotapi.NewPhoto(h.channelChatID, tgbotapi.FileURL(record.ImageURL))
		}
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeMarkdown
		photo.ReplyMarkup = markup
		_, err := h.bot.Send(photo)
		return err
	}

	var msg tgbotapi.MessageConfig
	if h.channelName != "" {
		msg = tgbotapi.NewMessageToChannel(h.channelName, caption)
	} else {
		msg = tgbotapi.NewMessage(h.channelChatID, caption)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = markup
	_, err := h.bot.Send(msg)
	return err
}
