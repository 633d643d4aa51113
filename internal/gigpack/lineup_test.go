package gigpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gig-pack/internal/model"
)

func ip(i int) *int { return &i }

func TestPlanLineup_MatchesByRoleName(t *testing.T) {
	existing := []model.LineupRole{
		{ID: "r2", RoleName: "Guitar", SortOrder: ip(2)},
		{ID: "r1", RoleName: "Drums", SortOrder: ip(0), InvitationStatus: model.InvitationAccepted},
		{ID: "r3", RoleName: "Guitar", SortOrder: ip(1)},
	}
	incoming := []LineupMember{
		{Role: "Guitar", Name: sp("Ana")},
		{Role: "Drums", Name: sp("Ben"), Notes: sp("bring brushes")},
		{Role: "guitar", Name: sp("Case differs")},
	}

	plan := PlanLineup("g1", existing, incoming)
	require.Len(t, plan.Ops, 3)

	// First unconsumed Guitar in sort order is r3.
	require.NotNil(t, plan.Ops[0].Update)
	assert.Equal(t, "r3", plan.Ops[0].Update.ID)
	assert.Equal(t, 0, plan.Ops[0].Update.SortOrder)

	require.NotNil(t, plan.Ops[1].Update)
	assert.Equal(t, "r1", plan.Ops[1].Update.ID)
	assert.Equal(t, "bring brushes", *plan.Ops[1].Update.Notes)
	assert.Equal(t, 1, plan.Ops[1].Update.SortOrder)

	ins := plan.Ops[2].Insert
	require.NotNil(t, ins)
	assert.Equal(t, "guitar", ins.RoleName)
	assert.Equal(t, "g1", ins.GigID)
	assert.Equal(t, model.InvitationPending, ins.InvitationStatus)
	assert.Equal(t, model.PaymentUnpaid, ins.PaymentStatus)
	assert.Equal(t, 2, *ins.SortOrder)

	assert.Equal(t, []string{"r2"}, plan.Deletes)
}

func TestPlanLineup_EmptyIncomingDeletesAll(t *testing.T) {
	plan := PlanLineup("g1", []model.LineupRole{{ID: "a", RoleName: "Bass"}, {ID: "b", RoleName: "Keys"}}, []LineupMember{})
	assert.Empty(t, plan.Ops)
	assert.Equal(t, []string{"a", "b"}, plan.Deletes)
}

func TestMusicianLookups(t *testing.T) {
	roles := []model.LineupRole{
		{MusicianID: sp("p1"), MusicianName: sp("Dana")},
		{MusicianID: sp("p1")},
		{MusicianName: sp("Sam")},
		{MusicianName: sp("Sam")},
		{MusicianName: sp("Lee"), ContactID: sp("c1")},
		{MusicianName: sp("")},
	}
	ids, names := musicianLookups(roles)
	assert.Equal(t, []string{"p1"}, ids)
	assert.Equal(t, []string{"Sam"}, names)
}
