package notify

import (
	"fmt"
	"go-jobwatch-automation/internal/monitor"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram pushes events to a chat so the channel reads like a status
// feed of the run.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authenticates the bot token against the API.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Send(ev monitor.Event) error {
	msg := tgbotapi.NewMessage(t.chatID, telegramText(ev))
	msg.ParseMode = "HTML" //use HTML for bold/links
	_, err := t.bot.Send(msg)
	return err
}

func telegramText(ev monitor.Event) string {
	var header string
	switch ev.Kind {
	case monitor.EventJobAvailable:
		header = "🔥 <b>Job Available</b>"
	case monitor.EventApplied:
		header = "✅ <b>Applied</b>"
	case monitor.EventError:
		header = "⚠️ <b>JobWatch Error</b>"
	default:
		header = "📣 <b>JobWatch</b>"
	}
	return fmt.Sprintf("%s\n%s\n🔗 <a href=\"%s\">Open posting</a>",
		header, ev.Message, ev.TargetURL)
}
