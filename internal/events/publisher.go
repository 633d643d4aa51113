package events

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "sync"
    "time"

    "github.com/google/uuid"
    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-pack/internal/gigpack"
)

const (
    dialTimeout    = 3 * time.Second
    publishTimeout = 10 * time.Second
    maxInFlight    = 32
)

// ErrPublishBacklog is returned by PackSaved when too many publishes are
// already in flight.  The event is dropped.
var ErrPublishBacklog = errors.New("events: publish backlog full")

// Publisher sends GigPackSavedEvent messages to RabbitMQ.  It implements
// gigpack.SaveListener so the reconciler can announce saves without
// knowing about the broker.  Publishing happens in the background; a save
// never waits on the broker.
type Publisher struct {
    url   string
    log   *zap.Logger
    now   func() time.Time
    send  func(ctx context.Context, queue string, body []byte) error
    slots chan struct{}
    wg    sync.WaitGroup
}

var _ gigpack.SaveListener = (*Publisher)(nil)

// NewPublisher returns a Publisher dialing url for every message.
func NewPublisher(url string, log *zap.Logger) *Publisher {
    if log == nil {
        log = zap.NewNop()
    }
    p := &Publisher{url: url, log: log, now: time.Now, slots: make(chan struct{}, maxInFlight)}
    p.send = p.publish
    return p
}

// PackSaved queues the event for res and returns without waiting for the
// broker.  Delivery failures are logged.
func (p *Publisher) PackSaved(ctx context.Context, res *gigpack.SaveResult) error {
    ev := newSavedEvent(uuid.NewString(), res, p.now())
    body, err := json.Marshal(ev)
    if err != nil {
        return fmt.Errorf("marshal event: %w", err)
    }

    select {
    case p.slots <- struct{}{}:
    default:
        return ErrPublishBacklog
    }
    p.wg.Add(1)
    go func() {
        defer p.wg.Done()
        defer func() { <-p.slots }()

        // The request may finish before the broker answers.
        sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
        defer cancel()
        if err := p.send(sendCtx, GigPackSavedQueue, body); err != nil {
            p.log.Warn("publish gigpack.saved failed", zap.String("gig_id", ev.GigID), zap.Error(err))
            return
        }
        p.log.Debug("published gigpack.saved", zap.String("gig_id", ev.GigID), zap.String("event_id", ev.EventID))
    }()
    return nil
}

// Close waits for in-flight publishes or until ctx is done.
func (p *Publisher) Close(ctx context.Context) error {
    done := make(chan struct{})
    go func() {
        p.wg.Wait()
        close(done)
    }()
    select {
    case <-done:
        return nil
    case <-ctx.Done():
        return ctx.Err()
    }
}

func (p *Publisher) publish(ctx context.Context, queue string, body []byte) error {
    conn, err := amqp.DialConfig(p.url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(dialTimeout),
    })
    if err != nil {
        return fmt.Errorf("dial: %w", err)
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    // Idempotent.  Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msg := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    p.now().UTC(),
        Body:         body,
    }
    // default exchange, routing key = queue name
    if err := ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
        return fmt.Errorf("publish: %w", err)
    }
    return nil
}
