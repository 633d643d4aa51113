package gigpack

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/gig-pack/internal/model"
)

// SaveRequest is one edit of a gig pack.
type SaveRequest struct {
	GigID   string
	OwnerID string // set on new gigs only
	Pack    *GigPack
	IsNew   bool
}

// SaveResult is returned by Reconciler.Save.  Gig is the row as stored
// after the save.  The lineup id lists tell invitation and payment
// consumers which slots changed.
type SaveResult struct {
	Gig            *model.Gig
	Created        bool
	LineupInserted []string
	LineupUpdated  []string
	LineupDeleted  []string
}

// SaveListener is told about every successful save.  Errors are logged
// and never fail the save.
type SaveListener interface {
	PackSaved(ctx context.Context, res *SaveResult) error
}

// Reconciler applies edited GigPack documents to the relational store.
type Reconciler struct {
	store    Store
	atomic   bool
	log      *zap.Logger
	listener SaveListener
	now      func() time.Time
	newID    func() string
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithAtomic controls whether all child collections of one save are
// written inside a single store transaction.  Without it each
// collection is written on its own and a failure midway leaves the
// earlier collections already replaced.
func WithAtomic(atomic bool) ReconcilerOption {
	return func(r *Reconciler) { r.atomic = atomic }
}

// WithListener registers a SaveListener.
func WithListener(l SaveListener) ReconcilerOption {
	return func(r *Reconciler) { r.listener = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *Reconciler) { r.now = now }
}

// WithIDs overrides row id generation, for tests.
func WithIDs(next func() string) ReconcilerOption {
	return func(r *Reconciler) { r.newID = next }
}

// NewReconciler returns a Reconciler writing to store.  Saves are
// atomic unless WithAtomic(false) is given.
func NewReconciler(store Store, log *zap.Logger, opts ...ReconcilerOption) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reconciler{
		store:  store,
		atomic: true,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save persists the scalar fields of req.Pack and resyncs every child
// collection present in it.  Schedule, materials, packing and the
// setlist are replaced wholesale; the lineup is reconciled by role name
// (see PlanLineup).  The first store error aborts the run.
func (r *Reconciler) Save(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	if err := Validate(req.Pack); err != nil {
		return nil, err
	}
	res := &SaveResult{}
	var err error
	if r.atomic {
		err = r.store.Atomic(ctx, func(tx Store) error {
			res = &SaveResult{}
			return r.apply(ctx, tx, req, res)
		})
	} else {
		err = r.apply(ctx, r.store, req, res)
	}
	if err != nil {
		r.log.Warn("gig pack save failed",
			zap.String("gig_id", req.GigID),
			zap.Bool("atomic", r.atomic),
			zap.Error(err))
		return nil, err
	}

	gig, err := r.store.GetGig(ctx, req.GigID)
	if err != nil {
		return nil, fmt.Errorf("reload gig: %w", err)
	}
	res.Gig = gig
	res.Created = req.IsNew

	r.log.Info("gig pack saved",
		zap.String("gig_id", req.GigID),
		zap.Bool("new", req.IsNew),
		zap.Int("lineup_inserted", len(res.LineupInserted)),
		zap.Int("lineup_updated", len(res.LineupUpdated)),
		zap.Int("lineup_deleted", len(res.LineupDeleted)))

	if r.listener != nil {
		if err := r.listener.PackSaved(ctx, res); err != nil {
			r.log.Warn("save listener failed", zap.String("gig_id", req.GigID), zap.Error(err))
		}
	}
	return res, nil
}

func (r *Reconciler) apply(ctx context.Context, s Store, req SaveRequest, res *SaveResult) error {
	p := req.Pack
	now := r.now()
	gig := &model.Gig{
		ID:            req.GigID,
		OwnerID:       req.OwnerID,
		Title:         p.Title,
		Date:          p.Date,
		CallTime:      p.CallTime,
		VenueName:     p.VenueName,
		VenueAddress:  p.VenueAddress,
		HeroImageURL:  p.HeroImage,
		BandName:      p.BandName,
		GigType:       p.GigType,
		Notes:         p.Notes,
		InternalNotes: p.InternalNotes,
		SetlistText:   p.Setlist,
		Theme:         p.Theme,
		AccentColor:   p.Branding.AccentColor,
		LogoURL:       p.Branding.LogoURL,
		UpdatedAt:     now,
	}
	if req.IsNew {
		gig.CreatedAt = now
		if err := s.InsertGig(ctx, gig); err != nil {
			return fmt.Errorf("insert gig: %w", err)
		}
	} else if err := s.UpdateGig(ctx, gig); err != nil {
		return fmt.Errorf("update gig: %w", err)
	}

	if p.Schedule != nil {
		items := make([]model.ScheduleItem, len(p.Schedule))
		for i, e := range p.Schedule {
			items[i] = model.ScheduleItem{ID: r.newID(), GigID: req.GigID, Time: e.Time, Label: e.Label, SortOrder: intPtr(i)}
		}
		if err := s.ReplaceSchedule(ctx, req.GigID, items); err != nil {
			return fmt.Errorf("replace schedule: %w", err)
		}
	}

	if p.Lineup != nil {
		if err := r.syncLineup(ctx, s, req.GigID, p.Lineup, res); err != nil {
			return fmt.Errorf("sync lineup: %w", err)
		}
	}

	if p.Materials != nil {
		items := make([]model.Material, len(p.Materials))
		for i, e := range p.Materials {
			items[i] = model.Material{ID: r.newID(), GigID: req.GigID, Label: e.Label, URL: e.URL, Kind: e.Kind, SortOrder: intPtr(i)}
		}
		if err := s.ReplaceMaterials(ctx, req.GigID, items); err != nil {
			return fmt.Errorf("replace materials: %w", err)
		}
	}

	if p.PackingChecklist != nil {
		items := make([]model.PackingItem, len(p.PackingChecklist))
		for i, e := range p.PackingChecklist {
			items[i] = model.PackingItem{ID: r.newID(), GigID: req.GigID, Label: e.Label, SortOrder: intPtr(i)}
		}
		if err := s.ReplacePacking(ctx, req.GigID, items); err != nil {
			return fmt.Errorf("replace packing: %w", err)
		}
	}

	if p.SetlistStructured != nil {
		sections := make([]model.SetlistSection, len(p.SetlistStructured))
		for i, sec := range p.SetlistStructured {
			secID := r.newID()
			songs := make([]model.SetlistSong, len(sec.Songs))
			for j, song := range sec.Songs {
				songs[j] = model.SetlistSong{
					ID:           r.newID(),
					SectionID:    secID,
					Title:        song.Title,
					Artist:       song.Artist,
					Key:          song.Key,
					Tempo:        song.Tempo,
					Notes:        song.Notes,
					ReferenceURL: song.ReferenceURL,
					SortOrder:    intPtr(j),
				}
			}
			sections[i] = model.SetlistSection{ID: secID, GigID: req.GigID, Name: sec.Name, SortOrder: intPtr(i), Songs: songs}
		}
		if err := s.ReplaceSetlist(ctx, req.GigID, sections); err != nil {
			return fmt.Errorf("replace setlist: %w", err)
		}
	}
	return nil
}

func (r *Reconciler) syncLineup(ctx context.Context, s Store, gigID string, incoming []LineupMember, res *SaveResult) error {
	existing, err := s.ListLineup(ctx, gigID)
	if err != nil {
		return err
	}
	plan := PlanLineup(gigID, existing, incoming)
	for _, op := range plan.Ops {
		if u := op.Update; u != nil {
			if err := s.UpdateLineupDisplay(ctx, u.ID, u.MusicianName, u.Notes, u.SortOrder); err != nil {
				return err
			}
			res.LineupUpdated = append(res.LineupUpdated, u.ID)
			continue
		}
		row := op.Insert
		row.ID = r.newID()
		if err := s.InsertLineupRole(ctx, row); err != nil {
			return err
		}
		res.LineupInserted = append(res.LineupInserted, row.ID)
	}
	if len(plan.Deletes) > 0 {
		if err := s.DeleteLineupRoles(ctx, plan.Deletes); err != nil {
			return err
		}
		res.LineupDeleted = append(res.LineupDeleted, plan.Deletes...)
	}
	return nil
}

func intPtr(i int) *int { return &i }
