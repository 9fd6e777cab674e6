package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCommand processes slash commands
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		if _, err := h.replyTo(message.Chat.ID, message.MessageID, msgWelcome); err != nil {
			h.sendMessage(message.Chat.ID, msgWelcome)
		}
	case "help":
		h.sendMessage(message.Chat.ID, h.getHelpMessage())
	case "stats":
		h.handleStatsCommand(ctx, message.Chat.ID)
	default:
		h.sendMessage(message.Chat.ID, "Unknown command. /help for usage.")
	}
}

func (h *BotHandler) getHelpMessage() string {
	return "Send an Amazon or Flipkart product URL and I'll build a channel-ready post:\n\n" +
		"• the link is rewritten into an affiliate link\n" +
		"• title, prices, discount and promo code are scraped from the page\n" +
		"• you get a preview with Buy Now / Edit Caption / Send to Channel buttons\n\n" +
		"Commands:\n" +
		"/start - welcome message\n" +
		"/help - this text\n" +
		"/stats - session and published post counters"
}

func (h *BotHandler) handleStatsCommand(ctx context.Context, chatID int64) {
	sessionCount, err := h.sessions.Count(ctx)
	if err != nil {
		sessionCount = -1
	}
	postCount, err := h.postLog.Count(ctx)
	if err != nil {
		postCount = -1
	}
	h.sendMessage(chatID, fmt.Sprintf(
		"📊 Bot stats\n\nActive sessions: %d\nPosts published: %d\nUp since: %s",
		sessionCount, postCount, h.botStartedAt.Format("2006-01-02 15:04:05")))
}
