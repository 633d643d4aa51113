package model

import "time"

// Invitation states stored on lineup rows.  New rows always start
// as InvitationPending.
const (
    InvitationPending  = "pending"
    InvitationInvited  = "invited"
    InvitationAccepted = "accepted"
    InvitationDeclined = "declined"
)

// Payment states stored on lineup rows.
const (
    PaymentUnpaid = "unpaid"
    PaymentPaid   = "paid"
)

// LineupRole is one position on a gig (role + optional musician) as
// stored in `gig_lineup_roles`.  Its id is referenced by the
// invitation, notification and payment subsystems, so the row must
// survive edits that refer to the same slot.
//
// ContactEmail and ContactPhone are not columns of the table; they are
// filled by a LEFT JOIN on `contacts` when ContactID is set.
type LineupRole struct {
    ID               string     // gig_lineup_roles.id
    GigID            string     // gig_lineup_roles.gig_id
    RoleName         string     // gig_lineup_roles.role_name
    MusicianName     *string    // gig_lineup_roles.musician_name
    MusicianID       *string    // gig_lineup_roles.musician_id (FK profiles.id)
    ContactID        *string    // gig_lineup_roles.contact_id (FK contacts.id)
    InvitationStatus string     // gig_lineup_roles.invitation_status
    PaymentStatus    string     // gig_lineup_roles.payment_status
    AgreedFeeCents   *int64     // gig_lineup_roles.agreed_fee_cents
    Currency         *string    // gig_lineup_roles.currency
    PaidAt           *time.Time // gig_lineup_roles.paid_at
    Notes            *string    // gig_lineup_roles.notes
    SortOrder        *int       // gig_lineup_roles.sort_order
    ContactEmail     *string    // contacts.email (joined)
    ContactPhone     *string    // contacts.phone (joined)
}

// Profile is a registered musician from the `profiles` table.  Lineup
// rows resolve their display contact details from it.
type Profile struct {
    ID        string  // profiles.id
    Name      string  // profiles.name
    Email     *string // profiles.email
    Phone     *string // profiles.phone
    AvatarURL *string // profiles.avatar_url
}
