package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// ScheduleRepo manages the `gig_schedule_items` table.  Rows are owned
// by a gig and nothing references them by id, so edits replace the
// whole list.
type ScheduleRepo struct{ db DBTX }

// NewScheduleRepo returns a ScheduleRepo bound to db.
func NewScheduleRepo(db DBTX) *ScheduleRepo { return &ScheduleRepo{db: db} }

// ListByGig returns the schedule of a gig in insertion order.
func (r *ScheduleRepo) ListByGig(ctx context.Context, gigID string) ([]model.ScheduleItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gig_id, time, label, sort_order FROM gig_schedule_items WHERE gig_id = ? ORDER BY seq`, gigID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ScheduleItem
	for rows.Next() {
		var s model.ScheduleItem
		if err := rows.Scan(&s.ID, &s.GigID, &s.Time, &s.Label, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Replace deletes every schedule row of the gig and inserts items in a
// single multi-row statement.
func (r *ScheduleRepo) Replace(ctx context.Context, gigID string, items []model.ScheduleItem) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM gig_schedule_items WHERE gig_id = ?`, gigID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO gig_schedule_items (id, gig_id, time, label, sort_order) VALUES `
	args := make([]interface{}, 0, len(items)*5)
	for i, s := range items {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, s.ID, gigID, s.Time, s.Label, s.SortOrder)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
