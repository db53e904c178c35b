package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers notifications to a staff chat via a Telegram bot.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSender creates a Telegram sender, or nil when the token or chat
// id is not configured. A bad token is logged by the caller via the error.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

// Name implements Sender.
func (t *TelegramSender) Name() string { return "telegram" }

// Send implements Sender.
func (t *TelegramSender) Send(ctx context.Context, msg Message) error {
	m := tgbotapi.NewMessage(t.chatID, msg.Subject+"\n\n"+msg.Text)
	if _, err := t.bot.Send(m); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
