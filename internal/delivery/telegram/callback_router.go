package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// handleCallback routes button presses. Every branch answers the callback
// exactly once; a handler invoked without a stored session answers with the
// session-expired toast and mutates nothing.
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	data := cq.Data

	switch {
	case data == callbackEditCaption:
		h.handleEditCaptionMenu(ctx, cq, chatID)
	case data == callbackBackToPreview:
		h.handleBackToPreview(ctx, cq, chatID)
	case data == callbackSendToChannel:
		h.handleSendToChannel(ctx, cq, chatID)
	case strings.HasPrefix(data, callbackEditFieldPrefix):
		h.handleEditFieldSelected(ctx, cq, chatID, strings.TrimPrefix(data, callbackEditFieldPrefix))
	default:
		h.answerCallback(cq.ID, "")
	}
}

// handleEditCaptionMenu swaps the preview keyboard for the field list
func (h *BotHandler) handleEditCaptionMenu(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64) {
	if _, err := h.sessions.Get(ctx, chatID); err != nil {
		h.answerCallback(cq.ID, msgSessionExpired)
		return
	}
	h.answerCallback(cq.ID, "")

	markup := editMenuMarkup()
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, cq.Message.MessageID, markup)
	if h.bot != nil {
		if _, err := h.bot.Request(edit); err != nil {
			log.Printf("failed to show edit menu: %v", err)
		}
	}
}

// handleEditFieldSelected marks the field as pending and prompts for a value
func (h *BotHandler) handleEditFieldSelected(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, rawField string) {
	if !entity.IsValidEditField(rawField) {
		h.answerCallback(cq.ID, "")
		return
	}
	field := entity.EditField(rawField)

	state, err := h.sessions.Get(ctx, chatID)
	if err != nil {
		h.answerCallback(cq.ID, msgSessionExpired)
		return
	}
	if err := h.sessions.SetEditing(ctx, chatID, field); err != nil {
		h.answerCallback(cq.ID, msgSessionExpired)
		return
	}
	h.answerCallback(cq.ID, "")

	prompt := "Please enter new " + strings.ToLower(field.Label()) + ".\nCurrent value: " + state.Record.Field(field)
	if h.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, prompt)
	msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true}
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("failed to send edit prompt: %v", err)
	}
}

// handleBackToPreview re-renders the preview message with its own keyboard
func (h *BotHandler) handleBackToPreview(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64) {
	state, err := h.sessions.Get(ctx, chatID)
	if err != nil {
		h.answerCallback(cq.ID, msgSessionExpired)
		return
	}

	if err := h.updatePreviewMessage(cq.Message, state.Record); err != nil {
		log.Printf("failed to restore preview: %v", err)
		h.answerCallback(cq.ID, "Error updating preview")
		return
	}
	h.answerCallback(cq.ID, "Preview updated!")
}
