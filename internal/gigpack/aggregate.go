package gigpack

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/iliyamo/gig-pack/internal/model"
)

// Aggregator builds GigPack documents from the relational rows of a gig.
type Aggregator struct {
	store Reader
	log   *zap.Logger
}

// NewAggregator returns an Aggregator reading from store.
func NewAggregator(store Reader, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{store: store, log: log}
}

// Load returns the GigPack of gigID.  A missing gig yields (nil, nil)
// so callers can render a not-found state; store errors are returned
// unchanged.
func (a *Aggregator) Load(ctx context.Context, gigID string) (*GigPack, error) {
	gig, err := a.store.GetGig(ctx, gigID)
	if err != nil {
		if errors.Is(err, ErrGigNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if gig == nil {
		return nil, nil
	}

	schedule, err := a.store.ListSchedule(ctx, gigID)
	if err != nil {
		return nil, err
	}
	lineup, err := a.store.ListLineup(ctx, gigID)
	if err != nil {
		return nil, err
	}
	materials, err := a.store.ListMaterials(ctx, gigID)
	if err != nil {
		return nil, err
	}
	packing, err := a.store.ListPacking(ctx, gigID)
	if err != nil {
		return nil, err
	}
	sections, err := a.store.ListSetlist(ctx, gigID)
	if err != nil {
		return nil, err
	}
	byID, byName, err := resolveMusicians(ctx, a.store, lineup)
	if err != nil {
		return nil, err
	}

	pack := Assemble(Rows{
		Gig:       gig,
		Schedule:  schedule,
		Lineup:    lineup,
		Materials: materials,
		Packing:   packing,
		Setlist:   sections,
	}, byID, byName)
	a.log.Debug("gig pack aggregated",
		zap.String("gig_id", gigID),
		zap.Int("lineup", len(pack.Lineup)),
		zap.Int("schedule", len(pack.Schedule)),
		zap.Int("setlist_sections", len(pack.SetlistStructured)))
	return pack, nil
}

// Rows is the raw relational content of one gig.
type Rows struct {
	Gig       *model.Gig
	Schedule  []model.ScheduleItem
	Lineup    []model.LineupRole
	Materials []model.Material
	Packing   []model.PackingItem
	Setlist   []model.SetlistSection
}

// Assemble is the pure part of Load: it orders, maps and derives fields
// from already fetched rows.  byID and byName come from the batched
// profile lookups and may be nil.
func Assemble(rows Rows, byID, byName map[string]model.Profile) *GigPack {
	g := rows.Gig
	created, updated := g.CreatedAt, g.UpdatedAt
	pack := &GigPack{
		ID:            g.ID,
		OwnerID:       g.OwnerID,
		Title:         g.Title,
		Date:          g.Date,
		CallTime:      g.CallTime,
		VenueName:     firstSet(g.VenueName, g.LocationName),
		VenueAddress:  firstSet(g.VenueAddress, g.LocationAddress),
		BandName:      g.BandName,
		GigType:       g.GigType,
		HeroImage:     firstSet(g.HeroImageURL, g.CoverImagePath),
		Notes:         g.Notes,
		InternalNotes: g.InternalNotes,
		Theme:         g.Theme,
		Branding:      Branding{AccentColor: g.AccentColor, LogoURL: g.LogoURL},
		Setlist:       g.SetlistText,
		CreatedAt:     &created,
		UpdatedAt:     &updated,
	}

	pack.Schedule = make([]ScheduleEntry, 0, len(rows.Schedule))
	for _, s := range stableBySortOrder(rows.Schedule, func(s model.ScheduleItem) *int { return s.SortOrder }) {
		pack.Schedule = append(pack.Schedule, ScheduleEntry{ID: s.ID, Time: s.Time, Label: s.Label, SortOrder: sortKey(s.SortOrder)})
	}

	pack.Lineup = make([]LineupMember, 0, len(rows.Lineup))
	for _, r := range stableBySortOrder(rows.Lineup, func(r model.LineupRole) *int { return r.SortOrder }) {
		m := LineupMember{
			ID:               r.ID,
			Role:             r.RoleName,
			Name:             r.MusicianName,
			Notes:            r.Notes,
			MusicianID:       r.MusicianID,
			ContactID:        r.ContactID,
			InvitationStatus: r.InvitationStatus,
			PaymentStatus:    r.PaymentStatus,
			AgreedFeeCents:   r.AgreedFeeCents,
			Currency:         r.Currency,
			SortOrder:        sortKey(r.SortOrder),
		}
		contactDetails(&m, r, byID, byName)
		pack.Lineup = append(pack.Lineup, m)
	}

	pack.Materials = make([]MaterialEntry, 0, len(rows.Materials))
	for _, m := range stableBySortOrder(rows.Materials, func(m model.Material) *int { return m.SortOrder }) {
		pack.Materials = append(pack.Materials, MaterialEntry{ID: m.ID, Label: m.Label, URL: m.URL, Kind: m.Kind, SortOrder: sortKey(m.SortOrder)})
	}

	pack.PackingChecklist = make([]PackingEntry, 0, len(rows.Packing))
	for _, p := range stableBySortOrder(rows.Packing, func(p model.PackingItem) *int { return p.SortOrder }) {
		pack.PackingChecklist = append(pack.PackingChecklist, PackingEntry{ID: p.ID, Label: p.Label, SortOrder: sortKey(p.SortOrder)})
	}

	pack.SetlistStructured = make([]SetlistSectionEntry, 0, len(rows.Setlist))
	for _, sec := range stableBySortOrder(rows.Setlist, func(s model.SetlistSection) *int { return s.SortOrder }) {
		entry := SetlistSectionEntry{ID: sec.ID, Name: sec.Name, SortOrder: sortKey(sec.SortOrder), Songs: make([]SetlistSongEntry, 0, len(sec.Songs))}
		for _, song := range stableBySortOrder(sec.Songs, func(s model.SetlistSong) *int { return s.SortOrder }) {
			entry.Songs = append(entry.Songs, SetlistSongEntry{
				ID:           song.ID,
				Title:        song.Title,
				Artist:       song.Artist,
				Key:          song.Key,
				Tempo:        song.Tempo,
				Notes:        song.Notes,
				ReferenceURL: song.ReferenceURL,
				SortOrder:    sortKey(song.SortOrder),
			})
		}
		pack.SetlistStructured = append(pack.SetlistStructured, entry)
	}

	// Stored flat text always wins over the structured setlist.
	if present(pack.Setlist) == "" && hasSongs(pack.SetlistStructured) {
		text := SynthesizeSetlistText(pack.SetlistStructured)
		pack.Setlist = &text
	}

	pack.VisualTheme = ClassifyGig(pack)
	if pack.HeroImage == nil || *pack.HeroImage == "" {
		pack.FallbackImage = FallbackImage(pack.VisualTheme, pack.ID)
	}
	return pack
}

// firstSet returns the first non-nil value of the chain.
func firstSet(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
