package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/gig-pack/internal/gigpack"
	"github.com/iliyamo/gig-pack/internal/model"
)

// Store bundles the gig repositories behind the gigpack.Store and
// gigpack.ShareStore interfaces.  A Store created by NewStore runs on
// the pool; the Store handed to an Atomic callback runs on a
// transaction.
type Store struct {
	db *sql.DB // nil inside a transaction
	q  DBTX

	Gigs      *GigRepo
	Schedule  *ScheduleRepo
	Lineup    *LineupRepo
	Materials *MaterialRepo
	Packing   *PackingRepo
	Setlist   *SetlistRepo
	Profiles  *ProfileRepo
	Shares    *ShareRepo
	Activity  *ActivityRepo
}

var (
	_ gigpack.Store      = (*Store)(nil)
	_ gigpack.ShareStore = (*Store)(nil)
)

// NewStore returns a Store on db.
func NewStore(db *sql.DB) *Store {
	s := bind(db)
	s.db = db
	return s
}

func bind(q DBTX) *Store {
	return &Store{
		q:         q,
		Gigs:      NewGigRepo(q),
		Schedule:  NewScheduleRepo(q),
		Lineup:    NewLineupRepo(q),
		Materials: NewMaterialRepo(q),
		Packing:   NewPackingRepo(q),
		Setlist:   NewSetlistRepo(q),
		Profiles:  NewProfileRepo(q),
		Shares:    NewShareRepo(q),
		Activity:  NewActivityRepo(q),
	}
}

// DB exposes the underlying sql.DB.  It is nil for a transactional
// Store.
func (s *Store) DB() *sql.DB { return s.db }

// Atomic runs fn inside a transaction.  The transaction commits when fn
// returns nil and rolls back otherwise.  Nested calls reuse the outer
// transaction.
func (s *Store) Atomic(ctx context.Context, fn func(gigpack.Store) error) (err error) {
	if s.db == nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()
	return fn(bind(tx))
}

func (s *Store) GetGig(ctx context.Context, id string) (*model.Gig, error) {
	return s.Gigs.GetByID(ctx, id)
}

func (s *Store) ListSchedule(ctx context.Context, gigID string) ([]model.ScheduleItem, error) {
	return s.Schedule.ListByGig(ctx, gigID)
}

func (s *Store) ListLineup(ctx context.Context, gigID string) ([]model.LineupRole, error) {
	return s.Lineup.ListByGig(ctx, gigID)
}

func (s *Store) ListMaterials(ctx context.Context, gigID string) ([]model.Material, error) {
	return s.Materials.ListByGig(ctx, gigID)
}

func (s *Store) ListPacking(ctx context.Context, gigID string) ([]model.PackingItem, error) {
	return s.Packing.ListByGig(ctx, gigID)
}

func (s *Store) ListSetlist(ctx context.Context, gigID string) ([]model.SetlistSection, error) {
	return s.Setlist.ListByGig(ctx, gigID)
}

func (s *Store) ProfilesByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	return s.Profiles.ListByIDs(ctx, ids)
}

func (s *Store) ProfilesByNames(ctx context.Context, names []string) ([]model.Profile, error) {
	return s.Profiles.ListByNames(ctx, names)
}

func (s *Store) InsertGig(ctx context.Context, g *model.Gig) error { return s.Gigs.Insert(ctx, g) }

func (s *Store) UpdateGig(ctx context.Context, g *model.Gig) error { return s.Gigs.Update(ctx, g) }

func (s *Store) ReplaceSchedule(ctx context.Context, gigID string, items []model.ScheduleItem) error {
	return s.Schedule.Replace(ctx, gigID, items)
}

func (s *Store) ReplaceMaterials(ctx context.Context, gigID string, items []model.Material) error {
	return s.Materials.Replace(ctx, gigID, items)
}

func (s *Store) ReplacePacking(ctx context.Context, gigID string, items []model.PackingItem) error {
	return s.Packing.Replace(ctx, gigID, items)
}

func (s *Store) ReplaceSetlist(ctx context.Context, gigID string, sections []model.SetlistSection) error {
	return s.Setlist.Replace(ctx, gigID, sections)
}

func (s *Store) InsertLineupRole(ctx context.Context, r *model.LineupRole) error {
	return s.Lineup.Insert(ctx, r)
}

func (s *Store) UpdateLineupDisplay(ctx context.Context, id string, musicianName, notes *string, sortOrder int) error {
	return s.Lineup.UpdateDisplay(ctx, id, musicianName, notes, sortOrder)
}

func (s *Store) DeleteLineupRoles(ctx context.Context, ids []string) error {
	return s.Lineup.DeleteByIDs(ctx, ids)
}

func (s *Store) GetShareToken(ctx context.Context, token string) (*model.ShareToken, error) {
	return s.Shares.Get(ctx, token)
}

func (s *Store) CreateShareToken(ctx context.Context, t *model.ShareToken) error {
	return s.Shares.Create(ctx, t)
}

func (s *Store) DeactivateShareToken(ctx context.Context, token string) error {
	return s.Shares.Deactivate(ctx, token)
}

func (s *Store) RecentActivity(ctx context.Context, gigID string, limit int) ([]model.ActivityEntry, error) {
	return s.Activity.Recent(ctx, gigID, limit)
}

// AppendActivity stores one activity entry.
func (s *Store) AppendActivity(ctx context.Context, e *model.ActivityEntry) error {
	return s.Activity.Insert(ctx, e)
}
