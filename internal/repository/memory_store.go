package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/iliyamo/gig-pack/internal/gigpack"
	"github.com/iliyamo/gig-pack/internal/model"
)

// Contact is a personal contact of a gig owner.  Only the fields joined
// onto lineup rows are kept.
type Contact struct {
	ID    string
	Email *string
	Phone *string
}

type memoryState struct {
	gigs      map[string]model.Gig
	schedule  []model.ScheduleItem
	lineup    []model.LineupRole
	materials []model.Material
	packing   []model.PackingItem
	sections  []model.SetlistSection
	songs     []model.SetlistSong
	profiles  []model.Profile
	contacts  map[string]Contact
	shares    map[string]model.ShareToken
	activity  []model.ActivityEntry
}

func (st memoryState) clone() memoryState {
	c := memoryState{
		gigs:      make(map[string]model.Gig, len(st.gigs)),
		schedule:  append([]model.ScheduleItem(nil), st.schedule...),
		lineup:    append([]model.LineupRole(nil), st.lineup...),
		materials: append([]model.Material(nil), st.materials...),
		packing:   append([]model.PackingItem(nil), st.packing...),
		sections:  append([]model.SetlistSection(nil), st.sections...),
		songs:     append([]model.SetlistSong(nil), st.songs...),
		profiles:  append([]model.Profile(nil), st.profiles...),
		contacts:  make(map[string]Contact, len(st.contacts)),
		shares:    make(map[string]model.ShareToken, len(st.shares)),
		activity:  append([]model.ActivityEntry(nil), st.activity...),
	}
	for k, v := range st.gigs {
		c.gigs[k] = v
	}
	for k, v := range st.contacts {
		c.contacts[k] = v
	}
	for k, v := range st.shares {
		c.shares[k] = v
	}
	return c
}

// memoryCore is the state shared by a MemoryStore and the transaction
// views it hands to Atomic callbacks.  txMu orders writers: it is held by
// Atomic for the whole callback and by every write made outside one, so
// a rollback never discards another caller's committed write.  Lock
// order is txMu, then mu.
type memoryCore struct {
	txMu  sync.Mutex
	mu    sync.Mutex
	state memoryState
}

// MemoryStore keeps gig packs in process memory.  Rows are returned in
// insertion order, like the seq column of the MySQL tables.  Atomic
// snapshots the state and restores it when the callback fails.  Reads
// never wait for a running Atomic and may see its uncommitted writes.
// It is meant for local runs (STORE_BACKEND=memory) and tests.
type MemoryStore struct {
	*memoryCore
	inTx bool

	// FailOn makes the named method return the error, for tests.
	FailOn map[string]error
	// Calls counts method invocations by name.
	Calls map[string]int
}

var (
	_ gigpack.Store      = (*MemoryStore)(nil)
	_ gigpack.ShareStore = (*MemoryStore)(nil)
)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		memoryCore: &memoryCore{state: memoryState{
			gigs:     map[string]model.Gig{},
			contacts: map[string]Contact{},
			shares:   map[string]model.ShareToken{},
		}},
		FailOn: map[string]error{},
		Calls:  map[string]int{},
	}
}

// enter locks the store, counts the call and returns an injected error.
// The caller must unlock.
func (m *MemoryStore) enter(name string) error {
	m.mu.Lock()
	m.Calls[name]++
	return m.FailOn[name]
}

// write serializes a write made outside Atomic with running
// transactions.  It returns the release function.
func (m *MemoryStore) write() func() {
	if m.inTx {
		return func() {}
	}
	m.txMu.Lock()
	return m.txMu.Unlock
}

// Atomic runs fn against a transaction view of m and restores the
// previous state if fn fails.  Other writers wait until fn returns.
// Nested calls reuse the outer transaction.
func (m *MemoryStore) Atomic(ctx context.Context, fn func(gigpack.Store) error) error {
	if m.inTx {
		return fn(m)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := m.state.clone()
	m.mu.Unlock()

	tx := &MemoryStore{memoryCore: m.memoryCore, inTx: true, FailOn: m.FailOn, Calls: m.Calls}
	if err := fn(tx); err != nil {
		m.mu.Lock()
		m.state = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

// PutGig seeds a gig row as is, legacy columns included.
func (m *MemoryStore) PutGig(g model.Gig) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.gigs[g.ID] = g
}

// PutProfile seeds a musician profile.
func (m *MemoryStore) PutProfile(p model.Profile) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.profiles = append(m.state.profiles, p)
}

// PutContact seeds a personal contact.
func (m *MemoryStore) PutContact(c Contact) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.contacts[c.ID] = c
}

// PutLineupRole seeds a lineup row as is, including invitation and
// payment state.
func (m *MemoryStore) PutLineupRole(r model.LineupRole) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.lineup = append(m.state.lineup, r)
}

// PutSchedule, PutMaterial, PutPacking and PutSetlistSection seed raw
// child rows, keeping the sort_order given by the caller.
func (m *MemoryStore) PutSchedule(s model.ScheduleItem) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.schedule = append(m.state.schedule, s)
}

func (m *MemoryStore) PutMaterial(x model.Material) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.materials = append(m.state.materials, x)
}

func (m *MemoryStore) PutPacking(p model.PackingItem) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.packing = append(m.state.packing, p)
}

func (m *MemoryStore) PutSetlistSection(sec model.SetlistSection) {
	defer m.write()()
	m.mu.Lock()
	defer m.mu.Unlock()
	songs := sec.Songs
	sec.Songs = nil
	m.state.sections = append(m.state.sections, sec)
	m.state.songs = append(m.state.songs, songs...)
}

// LineupRole returns a stored lineup row by id.
func (m *MemoryStore) LineupRole(id string) (model.LineupRole, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.state.lineup {
		if r.ID == id {
			return r, true
		}
	}
	return model.LineupRole{}, false
}

func (m *MemoryStore) GetGig(ctx context.Context, id string) (*model.Gig, error) {
	defer m.mu.Unlock()
	if err := m.enter("GetGig"); err != nil {
		return nil, err
	}
	g, ok := m.state.gigs[id]
	if !ok {
		return nil, ErrGigNotFound
	}
	return &g, nil
}

func (m *MemoryStore) ListSchedule(ctx context.Context, gigID string) ([]model.ScheduleItem, error) {
	defer m.mu.Unlock()
	if err := m.enter("ListSchedule"); err != nil {
		return nil, err
	}
	var out []model.ScheduleItem
	for _, s := range m.state.schedule {
		if s.GigID == gigID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListLineup(ctx context.Context, gigID string) ([]model.LineupRole, error) {
	defer m.mu.Unlock()
	if err := m.enter("ListLineup"); err != nil {
		return nil, err
	}
	var out []model.LineupRole
	for _, r := range m.state.lineup {
		if r.GigID != gigID {
			continue
		}
		r.ContactEmail, r.ContactPhone = nil, nil
		if r.ContactID != nil {
			if c, ok := m.state.contacts[*r.ContactID]; ok {
				r.ContactEmail, r.ContactPhone = c.Email, c.Phone
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *MemoryStore) ListMaterials(ctx context.Context, gigID string) ([]model.Material, error) {
	defer m.mu.Unlock()
	if err := m.enter("ListMaterials"); err != nil {
		return nil, err
	}
	var out []model.Material
	for _, x := range m.state.materials {
		if x.GigID == gigID {
			out = append(out, x)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListPacking(ctx context.Context, gigID string) ([]model.PackingItem, error) {
	defer m.mu.Unlock()
	if err := m.enter("ListPacking"); err != nil {
		return nil, err
	}
	var out []model.PackingItem
	for _, p := range m.state.packing {
		if p.GigID == gigID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListSetlist(ctx context.Context, gigID string) ([]model.SetlistSection, error) {
	defer m.mu.Unlock()
	if err := m.enter("ListSetlist"); err != nil {
		return nil, err
	}
	var out []model.SetlistSection
	for _, sec := range m.state.sections {
		if sec.GigID != gigID {
			continue
		}
		for _, song := range m.state.songs {
			if song.SectionID == sec.ID {
				sec.Songs = append(sec.Songs, song)
			}
		}
		out = append(out, sec)
	}
	return out, nil
}

func (m *MemoryStore) ProfilesByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	defer m.mu.Unlock()
	if err := m.enter("ProfilesByIDs"); err != nil {
		return nil, err
	}
	return m.profilesWhere(ids, func(p model.Profile) string { return p.ID }), nil
}

func (m *MemoryStore) ProfilesByNames(ctx context.Context, names []string) ([]model.Profile, error) {
	defer m.mu.Unlock()
	if err := m.enter("ProfilesByNames"); err != nil {
		return nil, err
	}
	return m.profilesWhere(names, func(p model.Profile) string { return p.Name }), nil
}

func (m *MemoryStore) profilesWhere(vals []string, field func(model.Profile) string) []model.Profile {
	want := make(map[string]bool, len(vals))
	for _, v := range vals {
		want[v] = true
	}
	var out []model.Profile
	for _, p := range m.state.profiles {
		if want[field(p)] {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemoryStore) InsertGig(ctx context.Context, g *model.Gig) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("InsertGig"); err != nil {
		return err
	}
	if _, exists := m.state.gigs[g.ID]; exists {
		return ErrConflict
	}
	m.state.gigs[g.ID] = *g
	return nil
}

func (m *MemoryStore) UpdateGig(ctx context.Context, g *model.Gig) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("UpdateGig"); err != nil {
		return err
	}
	cur, ok := m.state.gigs[g.ID]
	if !ok {
		return ErrGigNotFound
	}
	cur.Title, cur.Date, cur.CallTime = g.Title, g.Date, g.CallTime
	cur.VenueName, cur.VenueAddress = g.VenueName, g.VenueAddress
	cur.HeroImageURL, cur.BandName, cur.GigType = g.HeroImageURL, g.BandName, g.GigType
	cur.Notes, cur.InternalNotes, cur.SetlistText = g.Notes, g.InternalNotes, g.SetlistText
	cur.Theme, cur.AccentColor, cur.LogoURL = g.Theme, g.AccentColor, g.LogoURL
	cur.UpdatedAt = g.UpdatedAt
	m.state.gigs[g.ID] = cur
	return nil
}

func (m *MemoryStore) ReplaceSchedule(ctx context.Context, gigID string, items []model.ScheduleItem) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("ReplaceSchedule"); err != nil {
		return err
	}
	kept := m.state.schedule[:0:0]
	for _, s := range m.state.schedule {
		if s.GigID != gigID {
			kept = append(kept, s)
		}
	}
	m.state.schedule = append(kept, items...)
	return nil
}

func (m *MemoryStore) ReplaceMaterials(ctx context.Context, gigID string, items []model.Material) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("ReplaceMaterials"); err != nil {
		return err
	}
	kept := m.state.materials[:0:0]
	for _, x := range m.state.materials {
		if x.GigID != gigID {
			kept = append(kept, x)
		}
	}
	m.state.materials = append(kept, items...)
	return nil
}

func (m *MemoryStore) ReplacePacking(ctx context.Context, gigID string, items []model.PackingItem) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("ReplacePacking"); err != nil {
		return err
	}
	kept := m.state.packing[:0:0]
	for _, p := range m.state.packing {
		if p.GigID != gigID {
			kept = append(kept, p)
		}
	}
	m.state.packing = append(kept, items...)
	return nil
}

func (m *MemoryStore) ReplaceSetlist(ctx context.Context, gigID string, sections []model.SetlistSection) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("ReplaceSetlist"); err != nil {
		return err
	}
	dropped := map[string]bool{}
	keptSections := m.state.sections[:0:0]
	for _, sec := range m.state.sections {
		if sec.GigID == gigID {
			dropped[sec.ID] = true
			continue
		}
		keptSections = append(keptSections, sec)
	}
	keptSongs := m.state.songs[:0:0]
	for _, song := range m.state.songs {
		if !dropped[song.SectionID] {
			keptSongs = append(keptSongs, song)
		}
	}
	for _, sec := range sections {
		keptSongs = append(keptSongs, sec.Songs...)
		sec.Songs = nil
		keptSections = append(keptSections, sec)
	}
	m.state.sections, m.state.songs = keptSections, keptSongs
	return nil
}

func (m *MemoryStore) InsertLineupRole(ctx context.Context, r *model.LineupRole) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("InsertLineupRole"); err != nil {
		return err
	}
	row := *r
	row.ContactEmail, row.ContactPhone = nil, nil
	m.state.lineup = append(m.state.lineup, row)
	return nil
}

func (m *MemoryStore) UpdateLineupDisplay(ctx context.Context, id string, musicianName, notes *string, sortOrder int) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("UpdateLineupDisplay"); err != nil {
		return err
	}
	for i := range m.state.lineup {
		if m.state.lineup[i].ID == id {
			order := sortOrder
			m.state.lineup[i].MusicianName = musicianName
			m.state.lineup[i].Notes = notes
			m.state.lineup[i].SortOrder = &order
		}
	}
	return nil
}

func (m *MemoryStore) DeleteLineupRoles(ctx context.Context, ids []string) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("DeleteLineupRoles"); err != nil {
		return err
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.state.lineup[:0:0]
	for _, r := range m.state.lineup {
		if !drop[r.ID] {
			kept = append(kept, r)
		}
	}
	m.state.lineup = kept
	return nil
}

func (m *MemoryStore) GetShareToken(ctx context.Context, token string) (*model.ShareToken, error) {
	defer m.mu.Unlock()
	if err := m.enter("GetShareToken"); err != nil {
		return nil, err
	}
	t, ok := m.state.shares[token]
	if !ok {
		return nil, ErrShareNotFound
	}
	return &t, nil
}

func (m *MemoryStore) CreateShareToken(ctx context.Context, t *model.ShareToken) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("CreateShareToken"); err != nil {
		return err
	}
	if _, exists := m.state.shares[t.Token]; exists {
		return ErrConflict
	}
	m.state.shares[t.Token] = *t
	return nil
}

func (m *MemoryStore) DeactivateShareToken(ctx context.Context, token string) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("DeactivateShareToken"); err != nil {
		return err
	}
	t, ok := m.state.shares[token]
	if !ok {
		return ErrShareNotFound
	}
	t.IsActive = false
	m.state.shares[token] = t
	return nil
}

func (m *MemoryStore) RecentActivity(ctx context.Context, gigID string, limit int) ([]model.ActivityEntry, error) {
	defer m.mu.Unlock()
	if err := m.enter("RecentActivity"); err != nil {
		return nil, err
	}
	var out []model.ActivityEntry
	for i := len(m.state.activity) - 1; i >= 0; i-- {
		if e := m.state.activity[i]; e.GigID == gigID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AppendActivity stores one activity entry.
func (m *MemoryStore) AppendActivity(ctx context.Context, e *model.ActivityEntry) error {
	defer m.write()()
	defer m.mu.Unlock()
	if err := m.enter("AppendActivity"); err != nil {
		return err
	}
	m.state.activity = append(m.state.activity, *e)
	return nil
}
