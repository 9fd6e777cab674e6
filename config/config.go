package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yourusername/telegram-deals-bot/internal/domain/constants"
)

// Config application configuration
type Config struct {
	TelegramToken       string
	ChannelID           string
	AmazonAffiliateTag  string
	FlipkartAffiliateID string
	PostgresDSN         string
	FetchTimeout        time.Duration
}

// Load reads configuration from the environment, with .env support.
// Affiliate credentials fall back to documented placeholders; the bot token
// is the only hard requirement.
func Load() (*Config, error) {
	// Load .env file when present
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:       strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		ChannelID:           getEnvString("CHANNEL_ID", constants.DefaultChannelID),
		AmazonAffiliateTag:  getEnvString("AMAZON_AFFILIATE_TAG", constants.DefaultAmazonAffiliateTag),
		FlipkartAffiliateID: getEnvString("FLIPKART_AFFILIATE_ID", constants.FlipkartPlaceholderAffiliateID),
		PostgresDSN:         strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		FetchTimeout:        getEnvSeconds("FETCH_TIMEOUT_SECONDS", constants.DefaultFetchTimeout),
	}

	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
	}

	return config, nil
}

// FlipkartConfigured reports whether a real Flipkart affiliate id is set.
// The placeholder sentinel disables the Flipkart rewrite entirely.
func (c *Config) FlipkartConfigured() bool {
	return c.FlipkartAffiliateID != "" && c.FlipkartAffiliateID != constants.FlipkartPlaceholderAffiliateID
}

func getEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
