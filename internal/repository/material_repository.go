package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// MaterialRepo manages the `gig_materials` table.
type MaterialRepo struct{ db DBTX }

// NewMaterialRepo returns a MaterialRepo bound to db.
func NewMaterialRepo(db DBTX) *MaterialRepo { return &MaterialRepo{db: db} }

// ListByGig returns the materials of a gig in insertion order.
func (r *MaterialRepo) ListByGig(ctx context.Context, gigID string) ([]model.Material, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gig_id, label, url, kind, sort_order FROM gig_materials WHERE gig_id = ? ORDER BY seq`, gigID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Material
	for rows.Next() {
		var m model.Material
		if err := rows.Scan(&m.ID, &m.GigID, &m.Label, &m.URL, &m.Kind, &m.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Replace deletes every material of the gig and inserts items.
func (r *MaterialRepo) Replace(ctx context.Context, gigID string, items []model.Material) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gig_materials WHERE gig_id = ?`, gigID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO gig_materials (id, gig_id, label, url, kind, sort_order) VALUES `
	args := make([]interface{}, 0, len(items)*6)
	for i, m := range items {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?)"
		args = append(args, m.ID, gigID, m.Label, m.URL, m.Kind, m.SortOrder)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
