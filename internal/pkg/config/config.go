package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	WTT      WTTConfig      `yaml:"wtt"`
	Report   ReportConfig   `yaml:"report"`
	Metadata MetadataConfig `yaml:"metadata"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type WTTConfig struct {
	AppSettingURL    string            `yaml:"appsetting_url"`
	StaticRoot       string            `yaml:"static_root"`
	LiveAPIURL       string            `yaml:"live_api_url"`
	MetadataAPIURL   string            `yaml:"metadata_api_url"`
	Takes            []int             `yaml:"takes"` // Page sizes to try, largest first
	DiscoveryTimeout time.Duration     `yaml:"discovery_timeout"`
	FetchTimeout     time.Duration     `yaml:"fetch_timeout"`
	UserAgent        string            `yaml:"user_agent"`
	Headers          map[string]string `yaml:"headers"`
}

type ReportConfig struct {
	Nation        string `yaml:"nation"`          // Target nation code, e.g. "IND"
	NoMatchNotice string `yaml:"no_match_notice"` // Optional override for the empty-event line
	DividerWidth  int    `yaml:"divider_width"`
}

type MetadataConfig struct {
	EventsXLSX string `yaml:"events_xlsx"`
	Strict     bool   `yaml:"strict"` // Strict mode: xlsx mandatory, unknown event ids fatal
}

type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"` // TELEGRAM_BOT_TOKEN env var wins
	ChatID    int64  `yaml:"chat_id"`   // TELEGRAM_CHAT_ID env var wins
	ParseMode string `yaml:"parse_mode"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A .env next to the working directory is optional; real env vars always
	// win so CI secrets override anything checked in.
	_ = godotenv.Load()
	applyEnvOverrides(&config)
	applyDefaults(&config)

	return &config, nil
}

func applyEnvOverrides(config *Config) {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		config.Telegram.BotToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
			config.Telegram.ChatID = id
		}
	}
	if xlsx := os.Getenv("EVENTS_XLSX"); xlsx != "" {
		config.Metadata.EventsXLSX = xlsx
	}
}

func applyDefaults(config *Config) {
	if len(config.WTT.Takes) == 0 {
		config.WTT.Takes = []int{200, 100, 50, 20, 10}
	}
	if config.WTT.DiscoveryTimeout <= 0 {
		config.WTT.DiscoveryTimeout = 20 * time.Second
	}
	if config.WTT.FetchTimeout <= 0 {
		config.WTT.FetchTimeout = 30 * time.Second
	}
	if config.WTT.UserAgent == "" {
		config.WTT.UserAgent = "Mozilla/5.0"
	}
	if config.Report.Nation == "" {
		config.Report.Nation = "IND"
	}
	if config.Report.DividerWidth <= 0 {
		config.Report.DividerWidth = 60
	}
	if config.Telegram.ParseMode == "" {
		config.Telegram.ParseMode = "Markdown"
	}
}
