package events

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    "github.com/google/uuid"
    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-pack/internal/model"
)

// ActivityAppender stores activity log entries.
type ActivityAppender interface {
    AppendActivity(ctx context.Context, e *model.ActivityEntry) error
}

// Consumer listens to the gigpack.saved queue and turns each event into an
// activity log entry.
type Consumer struct {
    url   string
    store ActivityAppender
    log   *zap.Logger
    now   func() time.Time
    newID func() string
}

// NewConsumer returns a Consumer writing to store.
func NewConsumer(url string, store ActivityAppender, log *zap.Logger) *Consumer {
    if log == nil {
        log = zap.NewNop()
    }
    return &Consumer{
        url:   url,
        store: store,
        log:   log,
        now:   func() time.Time { return time.Now().UTC() },
        newID: uuid.NewString,
    }
}

// Run connects to RabbitMQ and consumes until ctx is cancelled, redialing
// with exponential backoff when the broker goes away.  Messages that fail
// to process are rejected without requeue so the loop keeps moving.
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(c.url)
        if err != nil {
            c.log.Warn("activity consumer: dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consume(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.log.Warn("activity consumer: consume loop ended, reconnecting", zap.Error(err))
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        c.log.Warn("activity consumer: set QoS failed", zap.Error(err))
    }
    if _, err := ch.QueueDeclare(GigPackSavedQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.ConsumeWithContext(ctx, GigPackSavedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := c.handleMessage(ctx, d.Body); err != nil {
            c.log.Warn("activity consumer: handle message failed", zap.Error(err))
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

func (c *Consumer) handleMessage(ctx context.Context, body []byte) error {
    var ev GigPackSavedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.GigID == "" {
        return errors.New("event without gig_id")
    }
    at := c.now()
    if t, err := time.Parse(time.RFC3339, ev.SavedAt); err == nil {
        at = t.UTC()
    }
    entry := &model.ActivityEntry{
        ID:        c.newID(),
        GigID:     ev.GigID,
        Action:    ev.Action(),
        Message:   ev.Message(),
        CreatedAt: at,
    }
    if err := c.store.AppendActivity(ctx, entry); err != nil {
        return fmt.Errorf("append activity: %w", err)
    }
    return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
