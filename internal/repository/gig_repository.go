// Package repository contains data access logic for gigs. This file defines
// the repository for the `gigs` table, which holds the scalar fields of a
// gig pack. Child collections have their own repositories.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel comparisons

	"github.com/go-sql-driver/mysql" // mysql exposes driver error numbers

	"github.com/iliyamo/gig-pack/internal/model"
)

// gigColumns lists the columns scanned by scanGig in order.
const gigColumns = `id, owner_id, title, date, call_time, venue_name, venue_address,
    location_name, location_address, hero_image_url, cover_image_path, band_name,
    gig_type, notes, internal_notes, setlist, theme, accent_color, logo_url,
    created_at, updated_at`

// GigRepo manages persistence for gigs.
type GigRepo struct {
	db DBTX
}

// NewGigRepo constructs a GigRepo with the given DB handle.
func NewGigRepo(db DBTX) *GigRepo {
	return &GigRepo{db: db}
}

func scanGig(row interface{ Scan(...interface{}) error }, g *model.Gig) error {
	return row.Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.Date, &g.CallTime, &g.VenueName, &g.VenueAddress,
		&g.LocationName, &g.LocationAddress, &g.HeroImageURL, &g.CoverImagePath, &g.BandName,
		&g.GigType, &g.Notes, &g.InternalNotes, &g.SetlistText, &g.Theme, &g.AccentColor, &g.LogoURL,
		&g.CreatedAt, &g.UpdatedAt,
	)
}

// GetByID retrieves a gig by its ID.  It returns ErrGigNotFound if
// there is no matching row.
func (r *GigRepo) GetByID(ctx context.Context, id string) (*model.Gig, error) {
	var g model.Gig
	err := scanGig(r.db.QueryRowContext(ctx, `SELECT `+gigColumns+` FROM gigs WHERE id = ?`, id), &g)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Insert creates a gig row.  The caller supplies the id, owner and
// timestamps.  A duplicate id yields ErrConflict.
func (r *GigRepo) Insert(ctx context.Context, g *model.Gig) error {
	const q = `INSERT INTO gigs (` + gigColumns + `)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		g.ID, g.OwnerID, g.Title, g.Date, g.CallTime, g.VenueName, g.VenueAddress,
		g.LocationName, g.LocationAddress, g.HeroImageURL, g.CoverImagePath, g.BandName,
		g.GigType, g.Notes, g.InternalNotes, g.SetlistText, g.Theme, g.AccentColor, g.LogoURL,
		g.CreatedAt, g.UpdatedAt,
	)
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 { // ER_DUP_ENTRY
		return ErrConflict
	}
	return err
}

// Update overwrites the editable scalar fields of a gig.  Owner,
// creation time and the legacy location/cover columns are left alone.
// It returns ErrGigNotFound when no row has the given id.
func (r *GigRepo) Update(ctx context.Context, g *model.Gig) error {
	const q = `UPDATE gigs
               SET title = ?, date = ?, call_time = ?, venue_name = ?, venue_address = ?,
                   hero_image_url = ?, band_name = ?, gig_type = ?, notes = ?, internal_notes = ?,
                   setlist = ?, theme = ?, accent_color = ?, logo_url = ?, updated_at = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		g.Title, g.Date, g.CallTime, g.VenueName, g.VenueAddress,
		g.HeroImageURL, g.BandName, g.GigType, g.Notes, g.InternalNotes,
		g.SetlistText, g.Theme, g.AccentColor, g.LogoURL, g.UpdatedAt,
		g.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// MySQL reports 0 affected rows when nothing changed; tell that
	// apart from a missing row.
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM gigs WHERE id = ? LIMIT 1`, g.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGigNotFound
		}
		return err
	}
	return nil
}
