package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"order-ledger/internal/pkg/errs"
	"order-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type NotificationStore interface {
	Create(ctx context.Context, userID uuid.UUID, title, message, link string) (uuid.UUID, error)
}

// Publisher is the slice of the redis client used for push fan-out.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type pushMessage struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// Dispatcher stores in-app notifications and fans them out to push
// subscribers. A nil publisher keeps the in-app copy only.
type Dispatcher struct {
	store         NotificationStore
	publisher     Publisher
	channelPrefix string
	logger        *slog.Logger
}

func NewDispatcher(store NotificationStore, publisher Publisher, channelPrefix string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:         store,
		publisher:     publisher,
		channelPrefix: channelPrefix,
		logger:        logger,
	}
}

var _ commands.Notifier = (*Dispatcher)(nil)

func (d *Dispatcher) Notify(ctx context.Context, n commands.Notification) error {
	id, err := d.store.Create(ctx, n.UserID, n.Title, n.Message, n.Link)
	if err != nil {
		return errs.Wrap(err, "store notification")
	}

	if d.publisher == nil {
		return nil
	}

	data, err := json.Marshal(pushMessage{
		ID:        id,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal push message")
	}

	channel := d.channelPrefix + n.UserID.String()
	if err := d.publisher.Publish(ctx, channel, data).Err(); err != nil {
		return errs.Wrapf(err, "publish to %s", channel)
	}

	d.logger.DebugContext(ctx, "push notification published", "channel", channel, "notification_id", id)
	return nil
}
