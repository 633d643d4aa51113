package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// ActivityRepo reads and appends `gig_activity_log` rows.
type ActivityRepo struct{ db DBTX }

func NewActivityRepo(db DBTX) *ActivityRepo { return &ActivityRepo{db: db} }

// Recent returns at most limit entries of a gig, newest first.
func (r *ActivityRepo) Recent(ctx context.Context, gigID string, limit int) ([]model.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gig_id, action, message, created_at FROM gig_activity_log
         WHERE gig_id = ? ORDER BY created_at DESC, seq DESC LIMIT ?`, gigID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ActivityEntry
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(&e.ID, &e.GigID, &e.Action, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert appends an entry.
func (r *ActivityRepo) Insert(ctx context.Context, e *model.ActivityEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gig_activity_log (id, gig_id, action, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.GigID, e.Action, e.Message, e.CreatedAt)
	return err
}
