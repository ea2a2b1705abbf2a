package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"laundryops-bot/internal/pkg/logger"
)

// Sender delivers outbound messages to a chat. Replies also travel back in
// the webhook response body; this is the push path for proactive sends and
// for deployments that answer out-of-band.
type Sender interface {
	SendMessage(chatID, text string) error
}

// BotSender pushes messages through the Telegram Bot API using HTML parse
// mode, matching the markup the reply builders emit.
type BotSender struct {
	bot *tgbotapi.BotAPI
	log logger.ILogger
}

func NewBotSender(token string, log logger.ILogger) (*BotSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	log.Info("telegram", "bot authorized", map[string]interface{}{"username": bot.Self.UserName})
	return &BotSender{bot: bot, log: log}, nil
}

func (s *BotSender) SendMessage(chatID, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// LogSender stands in when no bot token is configured (local development).
// Messages are logged instead of sent.
type LogSender struct {
	log logger.ILogger
}

func NewLogSender(log logger.ILogger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendMessage(chatID, text string) error {
	s.log.Info("telegram", "outbound message (dev mode, not sent)", map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	})
	return nil
}

// NewSender picks the real bot when a token is present, the log-only sender
// otherwise.
func NewSender(token string, log logger.ILogger) (Sender, error) {
	if token == "" {
		log.Warn("telegram", "no bot token configured, using log-only sender", nil)
		return NewLogSender(log), nil
	}
	return NewBotSender(token, log)
}
