package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-deals-bot/internal/domain/repository"
	"github.com/yourusername/telegram-deals-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot           *tgbotapi.BotAPI
	channelName   string // "@channel" form, empty when numeric
	channelChatID int64  // numeric form, 0 when username

	postUseCase usecase.PostUseCase
	sessions    repository.SessionRepository
	postLog     repository.PostLogRepository

	lastSeenMu sync.RWMutex
	lastSeen   map[int64]time.Time

	offset       int
	botStartedAt time.Time
}

// NewBotHandler creates a new bot handler. channelID accepts either the
// "@channel" username or a numeric chat id.
func NewBotHandler(
	token string,
	channelID string,
	postUseCase usecase.PostUseCase,
	sessions repository.SessionRepository,
	postLog repository.PostLogRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	handler := &BotHandler{
		bot:          bot,
		postUseCase:  postUseCase,
		sessions:     sessions,
		postLog:      postLog,
		lastSeen:     make(map[int64]time.Time),
		botStartedAt: time.Now(),
	}
	handler.setChannel(channelID)

	return handler, nil
}

func (h *BotHandler) setChannel(channelID string) {
	channelID = strings.TrimSpace(channelID)
	if strings.HasPrefix(channelID, "@") {
		h.channelName = channelID
		return
	}
	if id, err := strconv.ParseInt(channelID, 10, 64); err == nil {
		h.channelChatID = id
		return
	}
	// Bare channel name without the @ prefix
	if channelID != "" {
		h.channelName = "@" + channelID
	}
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

func (h *BotHandler) touchLastSeen(userID int64) {
	h.lastSeenMu.Lock()
	h.lastSeen[userID] = time.Now()
	h.lastSeenMu.Unlock()
}
