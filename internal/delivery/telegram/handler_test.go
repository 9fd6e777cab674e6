package telegram

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-deals-bot/internal/domain/entity"
	"github.com/yourusername/telegram-deals-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-deals-bot/internal/usecase"
)

type stubPostUseCase struct {
	record entity.ProductRecord
	err    error
	calls  int
}

func (s *stubPostUseCase) ProcessURL(ctx context.Context, rawURL string) (entity.ProductRecord, error) {
	s.calls++
	if s.err != nil {
		return entity.ProductRecord{}, s.err
	}
	return s.record, nil
}

// newTestHandler builds a handler without a live bot; all outbound sends are
// skipped by the nil-bot guards, state transitions still run for real
func newTestHandler(uc usecase.PostUseCase) *BotHandler {
	return &BotHandler{
		postUseCase:  uc,
		sessions:     storage.NewMemorySessionRepository(),
		postLog:      storage.NewMemoryPostLogRepository(),
		lastSeen:     make(map[int64]time.Time),
		botStartedAt: time.Now(),
	}
}

func testRecord(title string) entity.ProductRecord {
	record := entity.NewProductRecord("https://www.amazon.in/dp/B0TEST?tag=mytag-21")
	record.Title = title
	record.OfferPrice = "₹800"
	record.MRP = "₹1000"
	record.DeriveDiscount()
	return record
}

func textMessage(chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: chatID},
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}
}

func callbackFrom(chatID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: chatID},
		Data:    data,
		Message: &tgbotapi.Message{MessageID: 2, Chat: &tgbotapi.Chat{ID: chatID}},
	}
}

func TestProductURLCreatesSession(t *testing.T) {
	ctx := context.Background()
	uc := &stubPostUseCase{record: testRecord("Scraped Product")}
	h := newTestHandler(uc)

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0TEST123"))

	if uc.calls != 1 {
		t.Fatalf("expected 1 ProcessURL call, got %d", uc.calls)
	}
	state, err := h.sessions.Get(ctx, 42)
	if err != nil {
		t.Fatalf("session not created: %v", err)
	}
	if state.Record.Title != "Scraped Product" {
		t.Errorf("stored title = %q", state.Record.Title)
	}
	if state.Editing != entity.EditIdle {
		t.Errorf("fresh session must not be editing")
	}
}

func TestProductURLOverwritesSession(t *testing.T) {
	ctx := context.Background()
	uc := &stubPostUseCase{record: testRecord("First")}
	h := newTestHandler(uc)

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0FIRST"))

	uc.record = testRecord("Second")
	uc.record.PromoCode = "NEW10"
	h.handleMessage(ctx, textMessage(42, "https://www.flipkart.com/x/p/itm2"))

	state, err := h.sessions.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if state.Record.Title != "Second" || state.Record.PromoCode != "NEW10" {
		t.Errorf("session not overwritten: %+v", state.Record)
	}
}

func TestExtractionFailureLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	uc := &stubPostUseCase{record: testRecord("Kept")}
	h := newTestHandler(uc)

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0KEEP"))

	uc.err = entity.ErrFetchFailed
	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0FAIL"))

	state, err := h.sessions.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if state.Record.Title != "Kept" {
		t.Errorf("failed fetch must not replace the session, got %q", state.Record.Title)
	}
}

func TestNonMarketplaceTextCreatesNoSession(t *testing.T) {
	ctx := context.Background()
	uc := &stubPostUseCase{record: testRecord("x")}
	h := newTestHandler(uc)

	h.handleMessage(ctx, textMessage(42, "https://www.ebay.in/itm/123"))
	h.handleMessage(ctx, textMessage(42, "hello there"))

	if uc.calls != 0 {
		t.Errorf("non-marketplace text must not trigger processing, got %d calls", uc.calls)
	}
	if _, err := h.sessions.Get(ctx, 42); err == nil {
		t.Error("no session should exist")
	}
}

func TestEditFlowUpdatesSingleField(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler(&stubPostUseCase{record: testRecord("Original Name")})

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0TEST"))

	h.handleCallback(ctx, callbackFrom(42, "edit_caption"))
	h.handleCallback(ctx, callbackFrom(42, "edit_title"))

	state, _ := h.sessions.Get(ctx, 42)
	if state.Editing != entity.EditAwaitingValue || state.EditingField != entity.FieldTitle {
		t.Fatalf("edit cursor not armed: %+v", state)
	}

	h.handleMessage(ctx, textMessage(42, "  New Name  "))

	state, _ = h.sessions.Get(ctx, 42)
	if state.Record.Title != "New Name" {
		t.Errorf("title = %q, want New Name", state.Record.Title)
	}
	if state.Editing != entity.EditIdle {
		t.Error("edit cursor must be cleared after the value arrives")
	}
	// Every other field untouched
	if state.Record.OfferPrice != "₹800" || state.Record.MRP != "₹1000" ||
		state.Record.DiscountAmount != "₹200" || state.Record.DiscountPercent != "20% off" {
		t.Errorf("other fields changed: %+v", state.Record)
	}
}

func TestEditTwiceLastValueWins(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler(&stubPostUseCase{record: testRecord("Original")})

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0TEST"))

	h.handleCallback(ctx, callbackFrom(42, "edit_title"))
	h.handleMessage(ctx, textMessage(42, "A"))

	h.handleCallback(ctx, callbackFrom(42, "edit_title"))
	h.handleMessage(ctx, textMessage(42, "B"))

	state, _ := h.sessions.Get(ctx, 42)
	if state.Record.Title != "B" {
		t.Errorf("title = %q, want B (second edit wins)", state.Record.Title)
	}
}

func TestEditAcceptsNonNumericPrice(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler(&stubPostUseCase{record: testRecord("P")})

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0TEST"))
	h.handleCallback(ctx, callbackFrom(42, "edit_offer_price"))
	h.handleMessage(ctx, textMessage(42, "whatever the user typed"))

	state, _ := h.sessions.Get(ctx, 42)
	if state.Record.OfferPrice != "whatever the user typed" {
		t.Errorf("edited values are stored verbatim, got %q", state.Record.OfferPrice)
	}
}

func TestCallbacksWithoutSessionMutateNothing(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler(&stubPostUseCase{})

	for _, data := range []string{"edit_caption", "edit_title", "back_to_preview", "send_to_channel"} {
		h.handleCallback(ctx, callbackFrom(42, data))
	}

	if _, err := h.sessions.Get(ctx, 42); err == nil {
		t.Error("expired-session callbacks must not create state")
	}
	if count, _ := h.postLog.Count(ctx); count != 0 {
		t.Errorf("send_to_channel without session published %d posts", count)
	}
}

func TestUnknownEditFieldIgnored(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler(&stubPostUseCase{record: testRecord("P")})

	h.handleMessage(ctx, textMessage(42, "https://www.amazon.in/dp/B0TEST"))
	h.handleCallback(ctx, callbackFrom(42, "edit_bogus_field"))

	state, _ := h.sessions.Get(ctx, 42)
	if state.Editing != entity.EditIdle {
		t.Errorf("unknown field must not arm the edit cursor: %+v", state)
	}
}

func TestChannelIDForms(t *testing.T) {
	h := &BotHandler{}
	h.setChannel("@deals_channel")
	if h.channelName != "@deals_channel" || h.channelChatID != 0 {
		t.Errorf("username channel parsed wrong: %q/%d", h.channelName, h.channelChatID)
	}

	h = &BotHandler{}
	h.setChannel("-1001234567890")
	if h.channelChatID != -1001234567890 || h.channelName != "" {
		t.Errorf("numeric channel parsed wrong: %q/%d", h.channelName, h.channelChatID)
	}

	h = &BotHandler{}
	h.setChannel("deals_channel")
	if h.channelName != "@deals_channel" {
		t.Errorf("bare name should gain the @ prefix: %q", h.channelName)
	}
}

func TestSplitIntoChunks(t *testing.T) {
	chunks := splitIntoChunks("abcdef", 2)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0] != "ab" || chunks[2] != "ef" {
		t.Errorf("unexpected chunks: %v", chunks)
	}

	chunks = splitIntoChunks("short", 4096)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("short text must stay one chunk: %v", chunks)
	}
}

func TestMarketplaceURLPattern(t *testing.T) {
	matching := []string{
		"https://www.amazon.in/dp/B0TEST",
		"http://amazon.com/dp/B0TEST",
		"www.flipkart.com/x/p/itm1",
		"https://WWW.AMAZON.IN/dp/B0TEST",
	}
	for _, url := range matching {
		if !marketplaceURLPattern.MatchString(url) {
			t.Errorf("should match: %s", url)
		}
	}

	nonMatching := []string{
		"https://www.ebay.in/itm/1",
		"hello world",
		"https://myamazonia.example.com/",
	}
	for _, url := range nonMatching {
		if marketplaceURLPattern.MatchString(url) {
			t.Errorf("should not match: %s", url)
		}
	}
}
