package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/telegram-deals-bot/config"
	"github.com/yourusername/telegram-deals-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-deals-bot/internal/infrastructure/fetch"
	"github.com/yourusername/telegram-deals-bot/internal/infrastructure/marketplace"
	"github.com/yourusername/telegram-deals-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-deals-bot/internal/usecase"
	"github.com/yourusername/telegram-deals-bot/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("🚀 Starting affiliate deals bot...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	if !cfg.FlipkartConfigured() {
		logger.InfoLogger.Println("⚠️ FLIPKART_AFFILIATE_ID not configured, Flipkart links will pass through unchanged")
	}

	// Dependencies (dependency injection)

	// 1. Repositories: Postgres when POSTGRES_DSN is set, memory otherwise
	sessionRepo := storage.NewSessionRepositoryFromEnv(cfg.PostgresDSN)
	postLogRepo := storage.NewPostLogRepositoryFromEnv(cfg.PostgresDSN)
	logger.InfoLogger.Println("✅ Repositories ready")

	// 2. Page fetcher and affiliate rewriter
	fetcher := fetch.NewClient(cfg.FetchTimeout)
	rewriter := &marketplace.Rewriter{
		AmazonTag:           cfg.AmazonAffiliateTag,
		FlipkartAffiliateID: cfg.FlipkartAffiliateID,
		FlipkartEnabled:     cfg.FlipkartConfigured(),
	}

	// 3. Use case
	postUseCase := usecase.NewPostUseCase(fetcher, rewriter)
	logger.InfoLogger.Println("✅ Use cases ready")

	// 4. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.ChannelID,
		postUseCase,
		sessionRepo,
		postLogRepo,
	)
	if err != nil {
		log.Fatalf("❌ Failed to create bot handler: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot ready: @%s", botHandler.GetBotUsername())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.InfoLogger.Println("⏳ Shutdown signal received...")
		cancel()
	}()

	logger.InfoLogger.Println("🤖 Bot is running. Press Ctrl+C to stop.")

	supervisor := telegram.NewSupervisor(botHandler)
	if err := supervisor.Run(ctx); err != nil && ctx.Err() == nil {
		logger.ErrorLogger.Printf("❌ Bot stopped: %v", err)
		os.Exit(1)
	}

	logger.InfoLogger.Println("✅ Bot stopped.")
}
