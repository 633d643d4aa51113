// Package gigpack turns the normalized gig tables into the nested GigPack
// document used by editors and the public share view, and applies edited
// documents back onto those tables.
package gigpack

import "time"

// GigPack is the nested, denormalized view of one gig.  It is built on
// every read and never cached by the service.  Child collections are
// pointers-to-slices semantically: a nil slice on an incoming edit means
// "not sent, leave as is" while an empty slice means "clear".
type GigPack struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"ownerId,omitempty"`
	Title         string   `json:"title" validate:"required,max=200"`
	Date          *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CallTime      *string  `json:"callTime,omitempty"`
	VenueName     *string  `json:"venueName,omitempty"`
	VenueAddress  *string  `json:"venueAddress,omitempty"`
	BandName      *string  `json:"bandName,omitempty"`
	GigType       *string  `json:"gigType,omitempty"`
	HeroImage     *string  `json:"heroImage,omitempty" validate:"omitempty,max=2048"`
	Notes         *string  `json:"notes,omitempty"`
	InternalNotes *string  `json:"internalNotes,omitempty"`
	Theme         *string  `json:"theme,omitempty"`
	Branding      Branding `json:"branding"`

	// Derived on read, ignored on write.
	VisualTheme   Theme  `json:"visualTheme,omitempty"`
	FallbackImage string `json:"fallbackImage,omitempty"`

	Schedule          []ScheduleEntry       `json:"schedule" validate:"dive"`
	Lineup            []LineupMember        `json:"lineup" validate:"dive"`
	Materials         []MaterialEntry       `json:"materials" validate:"dive"`
	PackingChecklist  []PackingEntry        `json:"packingChecklist" validate:"dive"`
	Setlist           *string               `json:"setlist,omitempty"`
	SetlistStructured []SetlistSectionEntry `json:"setlistStructured" validate:"dive"`

	// Only set on shared views.
	Activity []ActivityItem `json:"activity,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Branding holds the optional look-and-feel overrides of a gig.
type Branding struct {
	AccentColor *string `json:"accentColor,omitempty" validate:"omitempty,hexcolor"`
	LogoURL     *string `json:"logoUrl,omitempty"`
}

type ScheduleEntry struct {
	ID        string  `json:"id,omitempty"`
	Time      *string `json:"time"`
	Label     string  `json:"label" validate:"max=255"`
	SortOrder int     `json:"sortOrder"`
}

// LineupMember is one lineup slot.  Invitation and payment fields are
// read-only in the document: the reconciler never writes them from an
// incoming edit.
type LineupMember struct {
	ID               string  `json:"id,omitempty"`
	Role             string  `json:"role" validate:"max=100"`
	Name             *string `json:"name"`
	Notes            *string `json:"notes,omitempty"`
	MusicianID       *string `json:"musicianId,omitempty"`
	ContactID        *string `json:"contactId,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	AvatarURL        *string `json:"avatarUrl,omitempty"`
	InvitationStatus string  `json:"invitationStatus,omitempty"`
	PaymentStatus    string  `json:"paymentStatus,omitempty"`
	AgreedFeeCents   *int64  `json:"agreedFeeCents,omitempty"`
	Currency         *string `json:"currency,omitempty"`
	SortOrder        int     `json:"sortOrder"`
}

type MaterialEntry struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label" validate:"max=255"`
	URL       string `json:"url" validate:"max=2048"`
	Kind      string `json:"type" validate:"required,oneof=rehearsal performance charts reference other"`
	SortOrder int    `json:"sortOrder"`
}

type PackingEntry struct {
	ID        string `json:"id,omitempty"`
	Label     string `json:"label" validate:"max=255"`
	SortOrder int    `json:"sortOrder"`
}

type SetlistSectionEntry struct {
	ID        string             `json:"id,omitempty"`
	Name      string             `json:"name"`
	SortOrder int                `json:"sortOrder"`
	Songs     []SetlistSongEntry `json:"songs" validate:"dive"`
}

type SetlistSongEntry struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title" validate:"max=255"`
	Artist       *string `json:"artist,omitempty"`
	Key          *string `json:"key,omitempty"`
	Tempo        *string `json:"tempo,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ReferenceURL *string `json:"referenceUrl,omitempty"`
	SortOrder    int     `json:"sortOrder"`
}

// ActivityItem is a read-only activity log line attached to shared views.
type ActivityItem struct {
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
