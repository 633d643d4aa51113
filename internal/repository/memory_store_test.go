package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gig-pack/internal/gigpack"
	"github.com/iliyamo/gig-pack/internal/model"
)

func strp(s string) *string { return &s }

func TestMemoryStore_AtomicRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.PutGig(model.Gig{ID: "g1", Title: "Before"})
	m.PutPacking(model.PackingItem{ID: "p1", GigID: "g1", Label: "Cables"})

	boom := errors.New("boom")
	err := m.Atomic(ctx, func(s gigpack.Store) error {
		require.NoError(t, s.ReplacePacking(ctx, "g1", []model.PackingItem{{ID: "p2", GigID: "g1", Label: "Stands"}}))
		require.NoError(t, s.UpdateGig(ctx, &model.Gig{ID: "g1", Title: "After"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	g, err := m.GetGig(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Before", g.Title)
	items, err := m.ListPacking(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestMemoryStore_RollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.PutGig(model.Gig{ID: "g1", Title: "Before"})

	done := make(chan error, 1)
	boom := errors.New("boom")
	err := m.Atomic(ctx, func(s gigpack.Store) error {
		require.NoError(t, s.UpdateGig(ctx, &model.Gig{ID: "g1", Title: "After"}))
		go func() {
			done <- m.CreateShareToken(ctx, &model.ShareToken{Token: "other", GigID: "g1", IsActive: true})
		}()
		select {
		case err := <-done:
			t.Fatalf("write finished inside a running transaction: %v", err)
		case <-time.After(50 * time.Millisecond):
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, <-done)

	share, err := m.GetShareToken(ctx, "other")
	require.NoError(t, err)
	assert.True(t, share.IsActive)
	g, err := m.GetGig(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Before", g.Title)
}

func TestMemoryStore_NestedAtomicReusesTransaction(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.PutGig(model.Gig{ID: "g1", Title: "Before"})

	err := m.Atomic(ctx, func(s gigpack.Store) error {
		return s.Atomic(ctx, func(inner gigpack.Store) error {
			return inner.UpdateGig(ctx, &model.Gig{ID: "g1", Title: "After"})
		})
	})
	require.NoError(t, err)
	g, err := m.GetGig(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "After", g.Title)
}

func TestMemoryStore_ReplaceSetlistDropsSongs(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.PutSetlistSection(model.SetlistSection{ID: "s1", GigID: "g1", Name: "Set 1",
		Songs: []model.SetlistSong{{ID: "a", SectionID: "s1", Title: "Old"}}})
	m.PutSetlistSection(model.SetlistSection{ID: "s9", GigID: "other", Name: "Keep",
		Songs: []model.SetlistSong{{ID: "z", SectionID: "s9", Title: "Other gig"}}})

	require.NoError(t, m.ReplaceSetlist(ctx, "g1", []model.SetlistSection{{ID: "s2", GigID: "g1", Name: "New",
		Songs: []model.SetlistSong{{ID: "b", SectionID: "s2", Title: "Fresh"}}}}))

	got, err := m.ListSetlist(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Name)
	require.Len(t, got[0].Songs, 1)
	assert.Equal(t, "Fresh", got[0].Songs[0].Title)

	other, err := m.ListSetlist(ctx, "other")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Len(t, other[0].Songs, 1)
}

func TestMemoryStore_LineupJoinsContact(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.PutContact(Contact{ID: "c1", Email: strp("sub@example.com")})
	m.PutLineupRole(model.LineupRole{ID: "r1", GigID: "g1", RoleName: "Bass", ContactID: strp("c1")})

	rows, err := m.ListLineup(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].ContactEmail)
	assert.Equal(t, "sub@example.com", *rows[0].ContactEmail)
}

func TestMemoryStore_DeactivateUnknownShare(t *testing.T) {
	m := NewMemoryStore()
	err := m.DeactivateShareToken(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrShareNotFound)
}
