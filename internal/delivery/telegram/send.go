package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendText sends a message with optional parseMode/replyMarkup
func (h *BotHandler) sendText(chatID int64, text string, parseMode string, replyMarkup interface{}) (*tgbotapi.Message, error) {
	if h.bot == nil {
		return nil, fmt.Errorf("telegram bot is nil")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		return nil, err
	}
	return &sent, nil
}

// sendMessage sends a plain message, splitting it when over the Telegram limit
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d text=%q", chatID, truncateForLog(text, 120))
		return
	}

	for _, chunk := range splitIntoChunks(text, 4096) {
		if _, err := h.sendText(chatID, chunk, "", nil); err != nil {
			log.Printf("failed to send message: %v", err)
			return
		}
	}
}

// replyTo sends a message as a reply to another one
func (h *BotHandler) replyTo(chatID int64, messageID int, text string) (*tgbotapi.Message, error) {
	if h.bot == nil {
		return nil, fmt.Errorf("telegram bot is nil")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = messageID
	sent, err := h.bot.Send(msg)
	if err != nil {
		log.Printf("failed to send reply: %v", err)
		return nil, err
	}
	return &sent, nil
}

// editMessageText rewrites an existing message's text
func (h *BotHandler) editMessageText(chatID int64, messageID int, text string) {
	if h.bot == nil {
		return
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := h.bot.Request(edit); err != nil {
		log.Printf("failed to edit message %d: %v", messageID, err)
	}
}

// deleteMessage best-effort message removal
func (h *BotHandler) deleteMessage(chatID int64, messageID int) {
	if h.bot == nil {
		return
	}
	del := tgbotapi.NewDeleteMessage(chatID, messageID)
	if _, err := h.bot.Request(del); err != nil {
		log.Printf("failed to delete message %d: %v", messageID, err)
	}
}

// answerCallback acknowledges a button press, with an optional toast text
func (h *BotHandler) answerCallback(callbackID, text string) {
	if h.bot == nil {
		return
	}
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}

// splitIntoChunks splits text to fit the Telegram message size limit
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if current.Len() >= limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func truncateForLog(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
