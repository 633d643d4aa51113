package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// LineupRepo manages the `gig_lineup_roles` table.  Unlike the other
// child tables its ids are referenced by invitations, notifications and
// payments, so it offers row level operations instead of Replace.
type LineupRepo struct{ db DBTX }

// NewLineupRepo returns a LineupRepo bound to db.
func NewLineupRepo(db DBTX) *LineupRepo { return &LineupRepo{db: db} }

// ListByGig returns the lineup rows of a gig in insertion order, with
// the email and phone of an attached contact joined in.
func (r *LineupRepo) ListByGig(ctx context.Context, gigID string) ([]model.LineupRole, error) {
	const q = `SELECT l.id, l.gig_id, l.role_name, l.musician_name, l.musician_id, l.contact_id,
                      l.invitation_status, l.payment_status, l.agreed_fee_cents, l.currency, l.paid_at,
                      l.notes, l.sort_order, c.email, c.phone
               FROM gig_lineup_roles l
               LEFT JOIN contacts c ON c.id = l.contact_id
               WHERE l.gig_id = ?
               ORDER BY l.seq`
	rows, err := r.db.QueryContext(ctx, q, gigID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.LineupRole
	for rows.Next() {
		var l model.LineupRole
		if err := rows.Scan(
			&l.ID, &l.GigID, &l.RoleName, &l.MusicianName, &l.MusicianID, &l.ContactID,
			&l.InvitationStatus, &l.PaymentStatus, &l.AgreedFeeCents, &l.Currency, &l.PaidAt,
			&l.Notes, &l.SortOrder, &l.ContactEmail, &l.ContactPhone,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Insert adds a lineup row.  The caller sets the id and the initial
// invitation and payment status.
func (r *LineupRepo) Insert(ctx context.Context, l *model.LineupRole) error {
	const q = `INSERT INTO gig_lineup_roles
               (id, gig_id, role_name, musician_name, musician_id, contact_id,
                invitation_status, payment_status, agreed_fee_cents, currency, notes, sort_order)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		l.ID, l.GigID, l.RoleName, l.MusicianName, l.MusicianID, l.ContactID,
		l.InvitationStatus, l.PaymentStatus, l.AgreedFeeCents, l.Currency, l.Notes, l.SortOrder,
	)
	return err
}

// UpdateDisplay rewrites only the editable display fields of a row.
// Invitation, payment and musician/contact links are never touched.
func (r *LineupRepo) UpdateDisplay(ctx context.Context, id string, musicianName, notes *string, sortOrder int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE gig_lineup_roles SET musician_name = ?, notes = ?, sort_order = ? WHERE id = ?`,
		musicianName, notes, sortOrder, id)
	return err
}

// DeleteByIDs removes the given rows.  An empty list is a no-op.
func (r *LineupRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM gig_lineup_roles WHERE id IN (`+placeholders(len(ids))+`)`, stringArgs(ids)...)
	return err
}
