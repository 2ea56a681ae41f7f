package messaging

import (
	"fmt"

	"github.com/artkov/lancer/lancer-backend/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramMessenger implements domain.Messenger using the Telegram Bot API.
type TelegramMessenger struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramMessenger creates a messenger for the configured bot and chat.
// Construction performs a getMe call, so a bad token fails here rather than
// on the first send.
func NewTelegramMessenger(cfg config.TelegramConfig) (*TelegramMessenger, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramMessenger{
		bot:    bot,
		chatID: cfg.ChatID,
	}, nil
}

// Send delivers one HTML-formatted message to the configured chat
func (m *TelegramMessenger) Send(text string) error {
	msg := tgbotapi.NewMessage(m.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := m.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
