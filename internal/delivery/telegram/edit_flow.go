package telegram

import (
	"context"
	"strings"

	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
)

// handleEditValue consumes the free-text answer to an edit prompt and sends
// a fresh preview. The value is stored verbatim (trimmed) with no
// validation; a user may well type a non-numeric "price".
func (h *BotHandler) handleEditValue(ctx context.Context, chatID int64, text string) {
	state, err := h.sessions.Get(ctx, chatID)
	if err != nil || state.Editing != entity.EditAwaitingValue {
		h.sendMessage(chatID, msgEditSessionExpired)
		return
	}

	field := state.EditingField
	state.Record.SetField(field, strings.TrimSpace(text))
	state.Editing = entity.EditIdle
	state.EditingField = ""

	if err := h.sessions.Put(ctx, chatID, *state); err != nil {
		h.sendMessage(chatID, msgEditSessionExpired)
		return
	}

	h.sendMessage(chatID, "✅ "+field.Label()+" updated successfully!\n\nUpdated Preview:")
	if err := h.sendPreview(chatID, state.Record); err != nil {
		h.sendMessage(chatID, "Error sending preview: "+err.Error())
	}
}
