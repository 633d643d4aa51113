package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// ProfileRepo reads musician profiles.  Lookups are batched so a gig
// pack costs a fixed number of queries whatever the lineup size.
type ProfileRepo struct{ db DBTX }

// NewProfileRepo returns a ProfileRepo bound to db.
func NewProfileRepo(db DBTX) *ProfileRepo { return &ProfileRepo{db: db} }

// ListByIDs returns the profiles whose id is in ids.
func (r *ProfileRepo) ListByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	return r.list(ctx, "id", ids)
}

// ListByNames returns the profiles whose name exactly matches one of
// names.
func (r *ProfileRepo) ListByNames(ctx context.Context, names []string) ([]model.Profile, error) {
	return r.list(ctx, "name", names)
}

func (r *ProfileRepo) list(ctx context.Context, column string, vals []string) ([]model.Profile, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	q := `SELECT id, name, email, phone, avatar_url FROM profiles WHERE ` + column +
		` IN (` + placeholders(len(vals)) + `) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, stringArgs(vals)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
