package model

import "time"

// Gig represents a single booking as stored in the `gigs` table.  It
// carries the scalar fields of a gig pack; child collections live in
// their own tables and reference the gig through gig_id.
//
// The schema grew out of an earlier naming scheme, so a few values
// exist twice.  Readers must prefer the newer column when it is set:
//  HeroImageURL  over CoverImagePath
//  VenueName     over LocationName
//  VenueAddress  over LocationAddress
type Gig struct {
    ID              string    // gigs.id (uuid)
    OwnerID         string    // gigs.owner_id
    Title           string    // gigs.title
    Date            *string   // gigs.date ("YYYY-MM-DD", nullable)
    CallTime        *string   // gigs.call_time ("HH:MM", nullable)
    VenueName       *string   // gigs.venue_name
    VenueAddress    *string   // gigs.venue_address
    LocationName    *string   // gigs.location_name (legacy)
    LocationAddress *string   // gigs.location_address (legacy)
    HeroImageURL    *string   // gigs.hero_image_url
    CoverImagePath  *string   // gigs.cover_image_path (legacy)
    BandName        *string   // gigs.band_name
    GigType         *string   // gigs.gig_type (wedding, corporate, ...)
    Notes           *string   // gigs.notes (visible to the band)
    InternalNotes   *string   // gigs.internal_notes (manager only)
    SetlistText     *string   // gigs.setlist (flat legacy setlist)
    Theme           *string   // gigs.theme (chosen presentation theme)
    AccentColor     *string   // gigs.accent_color
    LogoURL         *string   // gigs.logo_url
    CreatedAt       time.Time // gigs.created_at
    UpdatedAt       time.Time // gigs.updated_at
}

// ScheduleItem is one line of a gig's running order (load-in,
// soundcheck, set 1, ...).  Rows are freely replaceable.
type ScheduleItem struct {
    ID        string  // gig_schedule_items.id
    GigID     string  // gig_schedule_items.gig_id
    Time      *string // gig_schedule_items.time (nullable)
    Label     string  // gig_schedule_items.label
    SortOrder *int    // gig_schedule_items.sort_order (nullable, treated as 0)
}

// PackingItem is one entry of the gig's packing checklist.
type PackingItem struct {
    ID        string // gig_packing_items.id
    GigID     string // gig_packing_items.gig_id
    Label     string // gig_packing_items.label
    SortOrder *int   // gig_packing_items.sort_order
}
