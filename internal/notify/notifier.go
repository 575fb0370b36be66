package notify

import (
	"context"
	"log"

	"github.com/tobiajayi/daily-verse-api/pkg/config"
)

// Notifier delivers a due notification through some external channel.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NewNotifier picks the delivery channel from configuration. Unknown
// channels fall back to log-only delivery.
func NewNotifier(cfg *config.Config) Notifier {
	switch cfg.NotifyChannel {
	case "pushover":
		return NewPushoverNotifier(cfg.PushoverToken, cfg.PushoverUser)
	case "mail":
		return NewMailNotifier(cfg)
	default:
		return LogNotifier{}
	}
}

// LogNotifier only logs deliveries. Used in development and as the fallback
// channel.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, n Notification) error {
	log.Printf("Reminder due: %s — %s (%s)", n.Title, n.Body, n.Reference)
	return nil
}
