package events

import (
    "context"
    "encoding/json"
    "errors"
    "sync/atomic"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"
    "go.uber.org/zap/zaptest/observer"

    "github.com/iliyamo/gig-pack/internal/gigpack"
    "github.com/iliyamo/gig-pack/internal/model"
    "github.com/iliyamo/gig-pack/internal/repository"
)

func TestPublisher_PackSavedSendsEvent(t *testing.T) {
    p := NewPublisher("amqp://unused", nil)
    p.now = func() time.Time { return time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC) }
    var gotQueue string
    var gotBody []byte
    p.send = func(_ context.Context, queue string, body []byte) error {
        gotQueue, gotBody = queue, body
        return nil
    }

    err := p.PackSaved(context.Background(), &gigpack.SaveResult{
        Gig:            &model.Gig{ID: "g1", Title: "Spring Gala"},
        LineupInserted: []string{"r9"},
        LineupDeleted:  []string{"r1"},
    })
    require.NoError(t, err)
    require.NoError(t, p.Close(context.Background()))
    assert.Equal(t, GigPackSavedQueue, gotQueue)

    var ev GigPackSavedEvent
    require.NoError(t, json.Unmarshal(gotBody, &ev))
    assert.Equal(t, "g1", ev.GigID)
    assert.Equal(t, "2026-05-01T18:00:00Z", ev.SavedAt)
    assert.Equal(t, []string{"r9"}, ev.LineupInserted)
    assert.NotEmpty(t, ev.EventID)
}

func TestPublisher_LogsSendError(t *testing.T) {
    core, logs := observer.New(zap.WarnLevel)
    p := NewPublisher("amqp://unused", zap.New(core))
    p.send = func(context.Context, string, []byte) error { return errors.New("broker down") }

    require.NoError(t, p.PackSaved(context.Background(), &gigpack.SaveResult{Gig: &model.Gig{ID: "g1"}}))
    require.NoError(t, p.Close(context.Background()))
    assert.Equal(t, 1, logs.FilterMessage("publish gigpack.saved failed").Len())
}

func TestPublisher_DoesNotWaitForBroker(t *testing.T) {
    p := NewPublisher("amqp://unused", nil)
    release := make(chan struct{})
    var sent atomic.Int32
    p.send = func(ctx context.Context, _ string, _ []byte) error {
        <-release
        sent.Add(1)
        return ctx.Err()
    }

    ctx, cancel := context.WithCancel(context.Background())
    start := time.Now()
    require.NoError(t, p.PackSaved(ctx, &gigpack.SaveResult{Gig: &model.Gig{ID: "g1"}}))
    assert.Less(t, time.Since(start), 500*time.Millisecond)
    // the request context ending must not abort the publish
    cancel()

    shortCtx, stop := context.WithTimeout(context.Background(), 20*time.Millisecond)
    defer stop()
    assert.ErrorIs(t, p.Close(shortCtx), context.DeadlineExceeded)

    close(release)
    require.NoError(t, p.Close(context.Background()))
    assert.Equal(t, int32(1), sent.Load())
}

func TestPublisher_DropsWhenBacklogFull(t *testing.T) {
    p := NewPublisher("amqp://unused", nil)
    p.slots = make(chan struct{}, 1)
    release := make(chan struct{})
    p.send = func(context.Context, string, []byte) error {
        <-release
        return nil
    }
    res := &gigpack.SaveResult{Gig: &model.Gig{ID: "g1"}}

    require.NoError(t, p.PackSaved(context.Background(), res))
    assert.ErrorIs(t, p.PackSaved(context.Background(), res), ErrPublishBacklog)

    close(release)
    require.NoError(t, p.Close(context.Background()))
}

func TestSave_ReturnsWhileBrokerHangs(t *testing.T) {
    store := repository.NewMemoryStore()
    p := NewPublisher("amqp://unused", nil)
    release := make(chan struct{})
    p.send = func(context.Context, string, []byte) error {
        <-release
        return nil
    }
    rec := gigpack.NewReconciler(store, nil, gigpack.WithListener(p))

    start := time.Now()
    res, err := rec.Save(context.Background(), gigpack.SaveRequest{
        GigID: "g1", OwnerID: "u1", IsNew: true, Pack: &gigpack.GigPack{Title: "Spring Gala"},
    })
    require.NoError(t, err)
    assert.Less(t, time.Since(start), 500*time.Millisecond)
    assert.True(t, res.Created)

    close(release)
    require.NoError(t, p.Close(context.Background()))
}

func TestConsumer_HandleMessageAppendsActivity(t *testing.T) {
    ctx := context.Background()
    store := repository.NewMemoryStore()
    c := NewConsumer("amqp://unused", store, nil)
    c.newID = func() string { return "a1" }

    body, err := json.Marshal(GigPackSavedEvent{
        GigID:          "g1",
        Title:          "Spring Gala",
        LineupInserted: []string{"r9"},
        LineupUpdated:  []string{"r2", "r3"},
        SavedAt:        "2026-05-01T18:00:00Z",
    })
    require.NoError(t, err)
    require.NoError(t, c.handleMessage(ctx, body))

    got, err := store.RecentActivity(ctx, "g1", 10)
    require.NoError(t, err)
    require.Len(t, got, 1)
    assert.Equal(t, "gig.updated", got[0].Action)
    assert.Equal(t, `Gig pack "Spring Gala" updated (lineup: 1 added, 2 kept, 0 removed)`, got[0].Message)
    assert.Equal(t, time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC), got[0].CreatedAt)
}

func TestConsumer_HandleMessageRejectsBadInput(t *testing.T) {
    c := NewConsumer("amqp://unused", repository.NewMemoryStore(), nil)
    assert.Error(t, c.handleMessage(context.Background(), []byte("{")))
    assert.Error(t, c.handleMessage(context.Background(), []byte(`{"title":"no gig"}`)))
}

func TestGigPackSavedEvent_Message(t *testing.T) {
    assert.Equal(t, `Gig pack "Gala" created`, GigPackSavedEvent{Title: "Gala", Created: true}.Message())
    assert.Equal(t, `Gig pack "Gala" updated`, GigPackSavedEvent{Title: "Gala", LineupUpdated: []string{"r1"}}.Message())
    assert.Equal(t, "gig.created", GigPackSavedEvent{Created: true}.Action())
}
