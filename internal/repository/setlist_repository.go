package repository

import (
	"context"

	"github.com/iliyamo/gig-pack/internal/model"
)

// SetlistRepo manages `setlist_sections` and their `setlist_items`.
// The subtree is replaced as a whole on every edit.
type SetlistRepo struct{ db DBTX }

// NewSetlistRepo returns a SetlistRepo bound to db.
func NewSetlistRepo(db DBTX) *SetlistRepo { return &SetlistRepo{db: db} }

// ListByGig returns the sections of a gig with their songs attached,
// both in insertion order.  Songs are fetched with one joined query.
func (r *SetlistRepo) ListByGig(ctx context.Context, gigID string) ([]model.SetlistSection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, gig_id, name, sort_order FROM setlist_sections WHERE gig_id = ? ORDER BY seq`, gigID)
	if err != nil {
		return nil, err
	}
	var sections []model.SetlistSection
	index := map[string]int{}
	for rows.Next() {
		var s model.SetlistSection
		if err := rows.Scan(&s.ID, &s.GigID, &s.Name, &s.SortOrder); err != nil {
			rows.Close()
			return nil, err
		}
		index[s.ID] = len(sections)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()
	if len(sections) == 0 {
		return sections, nil
	}

	const q = `SELECT i.id, i.section_id, i.title, i.artist, i.song_key, i.tempo, i.notes, i.reference_url, i.sort_order
               FROM setlist_items i
               JOIN setlist_sections s ON s.id = i.section_id
               WHERE s.gig_id = ?
               ORDER BY i.seq`
	songRows, err := r.db.QueryContext(ctx, q, gigID)
	if err != nil {
		return nil, err
	}
	defer songRows.Close()
	for songRows.Next() {
		var song model.SetlistSong
		if err := songRows.Scan(&song.ID, &song.SectionID, &song.Title, &song.Artist, &song.Key,
			&song.Tempo, &song.Notes, &song.ReferenceURL, &song.SortOrder); err != nil {
			return nil, err
		}
		if i, ok := index[song.SectionID]; ok {
			sections[i].Songs = append(sections[i].Songs, song)
		}
	}
	return sections, songRows.Err()
}

// Replace removes every section and song of the gig and inserts the
// given subtree.
func (r *SetlistRepo) Replace(ctx context.Context, gigID string, sections []model.SetlistSection) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE i FROM setlist_items i JOIN setlist_sections s ON s.id = i.section_id WHERE s.gig_id = ?`, gigID); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM setlist_sections WHERE gig_id = ?`, gigID); err != nil {
		return err
	}
	for _, sec := range sections {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO setlist_sections (id, gig_id, name, sort_order) VALUES (?, ?, ?, ?)`,
			sec.ID, gigID, sec.Name, sec.SortOrder); err != nil {
			return err
		}
		if len(sec.Songs) == 0 {
			continue
		}
		query := `INSERT INTO setlist_items (id, section_id, title, artist, song_key, tempo, notes, reference_url, sort_order) VALUES `
		args := make([]interface{}, 0, len(sec.Songs)*9)
		for i, s := range sec.Songs {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?, ?, ?)"
			args = append(args, s.ID, sec.ID, s.Title, s.Artist, s.Key, s.Tempo, s.Notes, s.ReferenceURL, s.SortOrder)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}
