package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/gig-pack/internal/model"
)

// ShareRepo persists public share tokens in `gig_shares`.
type ShareRepo struct{ DB DBTX }

func NewShareRepo(db DBTX) *ShareRepo { return &ShareRepo{DB: db} }

// Get returns the share row for token, active or not.  Validity checks
// are left to the caller.
func (r *ShareRepo) Get(ctx context.Context, token string) (*model.ShareToken, error) {
	var t model.ShareToken
	err := r.DB.QueryRowContext(ctx,
		"SELECT token, gig_id, is_active, expires_at, created_at FROM gig_shares WHERE token=? LIMIT 1",
		token).Scan(&t.Token, &t.GigID, &t.IsActive, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShareNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a share token row.
func (r *ShareRepo) Create(ctx context.Context, t *model.ShareToken) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO gig_shares (token, gig_id, is_active, expires_at, created_at) VALUES (?,?,?,?,?)",
		t.Token, t.GigID, t.IsActive, t.ExpiresAt, t.CreatedAt)
	return err
}

// Deactivate marks a token inactive.  Unknown tokens yield
// ErrShareNotFound.
func (r *ShareRepo) Deactivate(ctx context.Context, token string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE gig_shares SET is_active=0 WHERE token=?", token)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM gig_shares WHERE token=? LIMIT 1", token).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShareNotFound
		}
		return err
	}
	return nil // already inactive
}
