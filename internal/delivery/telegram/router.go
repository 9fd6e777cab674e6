package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// Start runs the long-poll loop until the context is cancelled or polling
// fails. Updates are handled one at a time: no handler runs concurrently
// with another, which is what lets SessionRepository users skip per-chat
// locking. Reconnection on failure is the Supervisor's job, not ours.
func (h *BotHandler) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(h.offset)
	u.Timeout = constants.PollTimeoutSeconds

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := h.bot.GetUpdates(u)
		if err != nil {
			h.offset = u.Offset
			return err
		}

		for _, update := range updates {
			if update.UpdateID >= u.Offset {
				u.Offset = update.UpdateID + 1
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *BotHandler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}
	h.handleMessage(ctx, update.Message)
}

// handleMessage routes one incoming message
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}
	h.touchLastSeen(message.From.ID)

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}
	chatID := message.Chat.ID

	// A pending field edit claims the next free-text message of the chat
	if h.hasPendingEdit(ctx, chatID) {
		h.handleEditValue(ctx, chatID, text)
		return
	}

	if marketplaceURLPattern.MatchString(text) {
		h.handleProductURL(ctx, message, text)
		return
	}

	if anyURLPattern.MatchString(text) {
		if _, err := h.replyTo(chatID, message.MessageID, msgNotProductURL); err != nil {
			h.sendMessage(chatID, msgNotProductURL)
		}
		return
	}

	if _, err := h.replyTo(chatID, message.MessageID, msgUsageHelp); err != nil {
		h.sendMessage(chatID, msgUsageHelp)
	}
}

func (h *BotHandler) hasPendingEdit(ctx context.Context, chatID int64) bool {
	state, err := h.sessions.Get(ctx, chatID)
	if err != nil {
		return false
	}
	return state.Editing == entity.EditAwaitingValue
}

// handleProductURL turns a marketplace link into a preview session
func (h *BotHandler) handleProductURL(ctx context.Context, message *tgbotapi.Message, url string) {
	chatID := message.Chat.ID

	processing, _ := h.replyTo(chatID, message.MessageID, msgProcessing)

	record, err := h.postUseCase.ProcessURL(ctx, url)
	if err != nil {
		text := msgFetchFailed
		if errors.Is(err, entity.ErrNotProductURL) {
			text = msgNotProductURL
		}
		if processing != nil {
			h.editMessageText(chatID, processing.MessageID, text)
		} else {
			h.sendMessage(chatID, text)
		}
		return
	}

	// Overwrite any previous session for this chat
	if err := h.sessions.Put(ctx, chatID, entity.SessionState{Record: record}); err != nil {
		if processing != nil {
			h.editMessageText(chatID, processing.MessageID, msgFetchFailed)
		}
		return
	}

	if err := h.sendPreview(chatID, record); err != nil {
		if processing != nil {
			h.editMessageText(chatID, processing.MessageID,
				"Error creating preview: "+err.Error()+". Try again or try a different link.")
		}
		return
	}

	if processing != nil {
		h.deleteMessage(chatID, processing.MessageID)
	}
}
