// Package events defines message payloads exchanged over the message broker.
package events

import (
    "fmt"
    "time"

    "github.com/iliyamo/gig-pack/internal/gigpack"
)

// GigPackSavedQueue is the durable queue carrying GigPackSavedEvent.
const GigPackSavedQueue = "gigpack.saved"

// GigPackSavedEvent is published after every successful gig pack save.
// It carries enough for downstream consumers to record activity, notify
// newly added musicians, or reconcile payments without querying the
// primary database.
type GigPackSavedEvent struct {
    EventID        string   `json:"event_id"`
    GigID          string   `json:"gig_id"`
    Title          string   `json:"title"`
    Created        bool     `json:"created"`
    LineupInserted []string `json:"lineup_inserted,omitempty"`
    LineupUpdated  []string `json:"lineup_updated,omitempty"`
    LineupDeleted  []string `json:"lineup_deleted,omitempty"`
    SavedAt        string   `json:"saved_at"`
}

// newSavedEvent builds the event for res.
func newSavedEvent(id string, res *gigpack.SaveResult, at time.Time) GigPackSavedEvent {
    ev := GigPackSavedEvent{
        EventID:        id,
        Created:        res.Created,
        LineupInserted: res.LineupInserted,
        LineupUpdated:  res.LineupUpdated,
        LineupDeleted:  res.LineupDeleted,
        SavedAt:        at.UTC().Format(time.RFC3339),
    }
    if res.Gig != nil {
        ev.GigID = res.Gig.ID
        ev.Title = res.Gig.Title
    }
    return ev
}

// Action is the activity log action recorded for the event.
func (e GigPackSavedEvent) Action() string {
    if e.Created {
        return "gig.created"
    }
    return "gig.updated"
}

// Message is the human-readable activity line shown on shared gigs.
func (e GigPackSavedEvent) Message() string {
    if e.Created {
        return fmt.Sprintf("Gig pack %q created", e.Title)
    }
    in, up, del := len(e.LineupInserted), len(e.LineupUpdated), len(e.LineupDeleted)
    if in == 0 && del == 0 {
        return fmt.Sprintf("Gig pack %q updated", e.Title)
    }
    return fmt.Sprintf("Gig pack %q updated (lineup: %d added, %d kept, %d removed)", e.Title, in, up, del)
}
