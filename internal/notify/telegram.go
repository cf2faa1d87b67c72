// Package notify delivers the assembled report over Telegram.
package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/wttnotify/wttnotify/internal/pkg/config"
)

// Telegram rejects messages longer than 4096 characters; stay a bit under.
const maxMessageLen = 4000

// ErrRateLimited marks a delivery rejected by Telegram's rate limiting.
// Callers log it and carry on instead of failing the run.
var ErrRateLimited = errors.New("telegram rate limited")

type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	chatID    int64
	parseMode string
}

func NewTelegramNotifier(config *config.Config) (*TelegramNotifier, error) {
	if config.Telegram.BotToken == "" {
		return nil, errors.New("telegram bot token is required (set TELEGRAM_BOT_TOKEN or telegram.bot_token)")
	}
	if config.Telegram.ChatID == 0 {
		return nil, errors.New("telegram chat id is required (set TELEGRAM_CHAT_ID or telegram.chat_id)")
	}

	bot, err := tgbotapi.NewBotAPI(config.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	bot.Debug = false

	return &TelegramNotifier{
		bot:       bot,
		chatID:    config.Telegram.ChatID,
		parseMode: config.Telegram.ParseMode,
	}, nil
}

// Send delivers the report text, split on line boundaries when it exceeds
// the Telegram message limit. It returns the ids of the sent messages.
func (n *TelegramNotifier) Send(text string) ([]int, error) {
	var ids []int
	for _, chunk := range SplitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(n.chatID, chunk)
		msg.ParseMode = n.parseMode

		sent, err := n.bot.Send(msg)
		if err != nil {
			var apiErr *tgbotapi.Error
			if errors.As(err, &apiErr) && (apiErr.Code == 429 || apiErr.RetryAfter > 0) {
				slog.Warn("Telegram rate limit reached, skipping send", "retry_after", apiErr.RetryAfter)
				return ids, ErrRateLimited
			}
			return ids, fmt.Errorf("failed to send message: %w", err)
		}
		ids = append(ids, sent.MessageID)
	}
	return ids, nil
}

// SplitMessage splits text into chunks of at most limit characters, breaking
// on newlines. A single line longer than the limit becomes its own chunk.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if b.Len() > 0 && b.Len()+len(line)+1 > limit {
			chunks = append(chunks, strings.TrimRight(b.String(), "\n"))
			b.Reset()
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		chunks = append(chunks, strings.TrimRight(b.String(), "\n"))
	}
	return chunks
}
