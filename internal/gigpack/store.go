package gigpack

import (
	"context"
	"errors"

	"github.com/iliyamo/gig-pack/internal/model"
)

// Sentinel errors returned by Store implementations.  Callers compare
// with errors.Is.
var (
	ErrGigNotFound   = errors.New("gig not found")
	ErrShareNotFound = errors.New("share token not found")
)

// ProfileReader resolves musician profiles in batches.
type ProfileReader interface {
	ProfilesByIDs(ctx context.Context, ids []string) ([]model.Profile, error)
	ProfilesByNames(ctx context.Context, names []string) ([]model.Profile, error)
}

// Reader is the read side of the relational store.  Child listings
// return rows in fetch order; ordering by sort_order happens here.
type Reader interface {
	ProfileReader
	GetGig(ctx context.Context, id string) (*model.Gig, error)
	ListSchedule(ctx context.Context, gigID string) ([]model.ScheduleItem, error)
	ListLineup(ctx context.Context, gigID string) ([]model.LineupRole, error)
	ListMaterials(ctx context.Context, gigID string) ([]model.Material, error)
	ListPacking(ctx context.Context, gigID string) ([]model.PackingItem, error)
	ListSetlist(ctx context.Context, gigID string) ([]model.SetlistSection, error)
}

// Writer is the write side used by the reconciler.
type Writer interface {
	InsertGig(ctx context.Context, g *model.Gig) error
	UpdateGig(ctx context.Context, g *model.Gig) error

	ReplaceSchedule(ctx context.Context, gigID string, items []model.ScheduleItem) error
	ReplaceMaterials(ctx context.Context, gigID string, items []model.Material) error
	ReplacePacking(ctx context.Context, gigID string, items []model.PackingItem) error
	ReplaceSetlist(ctx context.Context, gigID string, sections []model.SetlistSection) error

	InsertLineupRole(ctx context.Context, r *model.LineupRole) error
	UpdateLineupDisplay(ctx context.Context, id string, musicianName, notes *string, sortOrder int) error
	DeleteLineupRoles(ctx context.Context, ids []string) error
}

// Store is a relational store holding gig packs.  Atomic runs fn with a
// Store whose writes commit together or not at all.
type Store interface {
	Reader
	Writer
	Atomic(ctx context.Context, fn func(Store) error) error
}

// ShareStore resolves share tokens and the activity feed shown with
// them.
type ShareStore interface {
	GetShareToken(ctx context.Context, token string) (*model.ShareToken, error)
	CreateShareToken(ctx context.Context, t *model.ShareToken) error
	DeactivateShareToken(ctx context.Context, token string) error
	RecentActivity(ctx context.Context, gigID string, limit int) ([]model.ActivityEntry, error)
}
