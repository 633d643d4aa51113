package gigpack_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gig-pack/internal/gigpack"
	"github.com/iliyamo/gig-pack/internal/model"
	"github.com/iliyamo/gig-pack/internal/repository"
)

func newProjector(m *repository.MemoryStore) *gigpack.Projector {
	return gigpack.NewProjector(m, gigpack.NewAggregator(m, nil), nil, 0)
}

func seedShared(m *repository.MemoryStore) {
	seedBand(m)
	m.PutGig(model.Gig{ID: "g1", OwnerID: "owner-1", Title: "Wedding", InternalNotes: sp("client pays late"), Notes: sp("black tie")})
	m.PutProfile(model.Profile{ID: "p1", Name: "Dana", Email: sp("dana@band.test")})
}

func TestResolve_InvalidTokensAreNil(t *testing.T) {
	ctx := context.Background()
	m := repository.NewMemoryStore()
	seedShared(m)
	past := time.Now().Add(-time.Minute)
	require.NoError(t, m.CreateShareToken(ctx, &model.ShareToken{Token: "expired", GigID: "g1", IsActive: true, ExpiresAt: &past}))
	require.NoError(t, m.CreateShareToken(ctx, &model.ShareToken{Token: "off", GigID: "g1", IsActive: false}))
	require.NoError(t, m.CreateShareToken(ctx, &model.ShareToken{Token: "orphan", GigID: "gone", IsActive: true}))

	p := newProjector(m)
	for _, tok := range []string{"", "unknown", "expired", "off", "orphan"} {
		pack, err := p.Resolve(ctx, tok)
		require.NoError(t, err, tok)
		assert.Nil(t, pack, tok)
	}
}

func TestResolve_StripsManagerData(t *testing.T) {
	ctx := context.Background()
	m := repository.NewMemoryStore()
	seedShared(m)
	p := newProjector(m)

	tok, err := p.Issue(ctx, "g1", 24*time.Hour)
	require.NoError(t, err)
	require.NotNil(t, tok.ExpiresAt)

	pack, err := p.Resolve(ctx, tok.Token)
	require.NoError(t, err)
	require.NotNil(t, pack)
	assert.Equal(t, "black tie", *pack.Notes)
	assert.Nil(t, pack.InternalNotes)
	assert.Empty(t, pack.OwnerID)
	require.Len(t, pack.Lineup, 1)
	assert.Equal(t, "Dana", *pack.Lineup[0].Name)
	assert.Equal(t, "dana@band.test", *pack.Lineup[0].Email)
	assert.Nil(t, pack.Lineup[0].MusicianID)
	assert.Nil(t, pack.Lineup[0].AgreedFeeCents)
	assert.Empty(t, pack.Lineup[0].PaymentStatus)

	raw, err := json.Marshal(pack)
	require.NoError(t, err)
	for _, key := range []string{"internalNotes", "ownerId", "musicianId", "contactId", "invitationStatus", "paymentStatus", "agreedFeeCents"} {
		assert.NotContains(t, string(raw), `"`+key+`"`)
	}
}

func TestResolve_AttachesNewestActivity(t *testing.T) {
	ctx := context.Background()
	m := repository.NewMemoryStore()
	seedShared(m)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		require.NoError(t, m.AppendActivity(ctx, &model.ActivityEntry{
			ID:        fmt.Sprintf("a%d", i),
			GigID:     "g1",
			Action:    "gig.updated",
			Message:   fmt.Sprintf("edit %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	p := newProjector(m)
	tok, err := p.Issue(ctx, "g1", 0)
	require.NoError(t, err)
	assert.Nil(t, tok.ExpiresAt)

	pack, err := p.Resolve(ctx, tok.Token)
	require.NoError(t, err)
	require.Len(t, pack.Activity, gigpack.DefaultActivityLimit)
	assert.Equal(t, "edit 11", pack.Activity[0].Message)
}

func TestResolve_ActivityFailureIsTolerated(t *testing.T) {
	ctx := context.Background()
	m := repository.NewMemoryStore()
	seedShared(m)
	p := newProjector(m)
	tok, err := p.Issue(ctx, "g1", 0)
	require.NoError(t, err)
	m.FailOn["RecentActivity"] = errors.New("table missing")

	pack, err := p.Resolve(ctx, tok.Token)
	require.NoError(t, err)
	require.NotNil(t, pack)
	assert.Nil(t, pack.Activity)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	m := repository.NewMemoryStore()
	seedShared(m)
	p := newProjector(m)
	tok, err := p.Issue(ctx, "g1", 0)
	require.NoError(t, err)

	require.NoError(t, p.Revoke(ctx, tok.Token))
	pack, err := p.Resolve(ctx, tok.Token)
	require.NoError(t, err)
	assert.Nil(t, pack)
	assert.ErrorIs(t, p.Revoke(ctx, "unknown"), gigpack.ErrShareNotFound)
}

func TestPublic_DoesNotMutateInput(t *testing.T) {
	in := &gigpack.GigPack{
		OwnerID:       "owner-1",
		InternalNotes: sp("secret"),
		Lineup:        []gigpack.LineupMember{{Role: "Bass", MusicianID: sp("p1"), PaymentStatus: model.PaymentPaid}},
	}
	out := gigpack.Public(in)
	assert.Nil(t, out.InternalNotes)
	assert.Nil(t, out.Lineup[0].MusicianID)
	assert.Equal(t, "owner-1", in.OwnerID)
	assert.Equal(t, "p1", *in.Lineup[0].MusicianID)
}
