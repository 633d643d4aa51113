package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// PackingRepo manages the `gig_packing_items` table.
type PackingRepo struct{ db DBTX }

// NewPackingRepo returns a PackingRepo bound to db.
func NewPackingRepo(db DBTX) *PackingRepo { return &PackingRepo{db: db} }

// ListByGig returns the packing checklist of a gig in insertion order.
func (r *PackingRepo) ListByGig(ctx context.Context, gigID string) ([]model.PackingItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gig_id, label, sort_order FROM gig_packing_items WHERE gig_id = ? ORDER BY seq`, gigID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.PackingItem
	for rows.Next() {
		var p model.PackingItem
		if err := rows.Scan(&p.ID, &p.GigID, &p.Label, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Replace deletes the checklist of the gig and inserts items.
func (r *PackingRepo) Replace(ctx context.Context, gigID string, items []model.PackingItem) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gig_packing_items WHERE gig_id = ?`, gigID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO gig_packing_items (id, gig_id, label, sort_order) VALUES `
	args := make([]interface{}, 0, len(items)*4)
	for i, p := range items {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, p.ID, gigID, p.Label, p.SortOrder)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
