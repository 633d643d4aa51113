package model

import "time"

// ShareToken grants read-only, field restricted access to one gig.
// The token value is opaque and generated outside of the gig pack
// transform.
type ShareToken struct {
    Token     string     // gig_shares.token
    GigID     string     // gig_shares.gig_id
    IsActive  bool       // gig_shares.is_active
    ExpiresAt *time.Time // gig_shares.expires_at (nullable, never expires when null)
    CreatedAt time.Time  // gig_shares.created_at
}

// ActivityEntry is a row of `gig_activity_log`.  Entries are written
// by the event consumer and displayed newest first on shared gigs.
type ActivityEntry struct {
    ID        string    // gig_activity_log.id
    GigID     string    // gig_activity_log.gig_id
    Action    string    // gig_activity_log.action
    Message   string    // gig_activity_log.message
    CreatedAt time.Time // gig_activity_log.created_at
}
