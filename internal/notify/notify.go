// Dispatcher fans monitoring events out to the configured channels.
// Channel failures are logged and swallowed: a dead SMTP server or a
// revoked bot token must never stall the polling loop or starve the
// remaining channels.

package notify

import (
	"go-jobwatch-automation/internal/config"
	"go-jobwatch-automation/internal/monitor"
	"log"
)

// Channel delivers one event somewhere a human will see it.
type Channel interface {
	Name() string
	Send(ev monitor.Event) error
}

// Dispatcher implements monitor.Notifier over a set of channels.
type Dispatcher struct {
	channels []Channel
}

// NewDispatcher builds a dispatcher. No channels is fine; Notify is then
// a no-op and the loop never knows.
func NewDispatcher(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// Notify hands the event to every channel in order.
func (d *Dispatcher) Notify(ev monitor.Event) {
	for _, ch := range d.channels {
		if err := ch.Send(ev); err != nil {
			log.Printf("⚠️ %s notification failed: %v", ch.Name(), err)
		}
	}
}

// FromConfig builds the dispatcher from the notifications section,
// skipping channels that fail to initialize so one bad credential never
// blocks the run.
func FromConfig(cfg *config.Config) *Dispatcher {
	var channels []Channel
	if cfg.Notifications.Desktop {
		channels = append(channels, Desktop{})
	}
	if cfg.Notifications.Email.Enabled {
		channels = append(channels, NewEmail(cfg.Notifications.Email))
	}
	if cfg.Notifications.Telegram.Enabled {
		tg, err := NewTelegram(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
		if err != nil {
			log.Printf("⚠️ Telegram not initialized: %v", err)
		} else {
			channels = append(channels, tg)
		}
	}
	if len(channels) == 0 {
		log.Println("🔕 No notification channels configured")
	}
	return NewDispatcher(channels...)
}
