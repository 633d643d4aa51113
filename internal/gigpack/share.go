package gigpack

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/gig-pack/internal/model"
	"github.com/iliyamo/gig-pack/internal/utils"
)

// DefaultActivityLimit is the number of activity entries shown on a
// shared gig.
const DefaultActivityLimit = 10

// Projector serves the public, read-only view of a gig behind a share
// token.
type Projector struct {
	shares        ShareStore
	agg           *Aggregator
	log           *zap.Logger
	activityLimit int
	now           func() time.Time
}

// NewProjector returns a Projector.  A non-positive activityLimit falls
// back to DefaultActivityLimit.
func NewProjector(shares ShareStore, agg *Aggregator, log *zap.Logger, activityLimit int) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	if activityLimit <= 0 {
		activityLimit = DefaultActivityLimit
	}
	return &Projector{
		shares:        shares,
		agg:           agg,
		log:           log,
		activityLimit: activityLimit,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Resolve returns the restricted GigPack behind token, or (nil, nil)
// when the token is unknown, inactive or expired, or its gig is gone.
func (p *Projector) Resolve(ctx context.Context, token string) (*GigPack, error) {
	if token == "" {
		return nil, nil
	}
	share, err := p.shares.GetShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrShareNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if share == nil || !share.IsActive {
		return nil, nil
	}
	if share.ExpiresAt != nil && share.ExpiresAt.Before(p.now()) {
		return nil, nil
	}

	pack, err := p.agg.Load(ctx, share.GigID)
	if err != nil || pack == nil {
		return nil, err
	}
	public := Public(pack)

	entries, err := p.shares.RecentActivity(ctx, share.GigID, p.activityLimit)
	if err != nil {
		p.log.Warn("activity log unavailable for shared gig",
			zap.String("gig_id", share.GigID),
			zap.Error(err))
		return public, nil
	}
	public.Activity = make([]ActivityItem, 0, len(entries))
	for _, e := range entries {
		public.Activity = append(public.Activity, ActivityItem{Action: e.Action, Message: e.Message, CreatedAt: e.CreatedAt})
	}
	return public, nil
}

// Issue creates an active share token for gigID.  A zero ttl creates a
// token that never expires.
func (p *Projector) Issue(ctx context.Context, gigID string, ttl time.Duration) (*model.ShareToken, error) {
	raw, err := utils.NewShareToken()
	if err != nil {
		return nil, err
	}
	now := p.now()
	t := &model.ShareToken{Token: raw, GigID: gigID, IsActive: true, CreatedAt: now}
	if ttl > 0 {
		exp := now.Add(ttl)
		t.ExpiresAt = &exp
	}
	if err := p.shares.CreateShareToken(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Revoke deactivates token.  Revoking an unknown token returns
// ErrShareNotFound.
func (p *Projector) Revoke(ctx context.Context, token string) error {
	return p.shares.DeactivateShareToken(ctx, token)
}

// Public returns a copy of pack without manager-only data: internal
// notes, the owner, and per-musician links, invitation and payment
// details.  Resolved email and phone stay so the band can reach each
// other.
func Public(pack *GigPack) *GigPack {
	out := *pack
	out.OwnerID = ""
	out.InternalNotes = nil
	out.Activity = nil
	out.Lineup = make([]LineupMember, len(pack.Lineup))
	for i, m := range pack.Lineup {
		out.Lineup[i] = LineupMember{
			ID:        m.ID,
			Role:      m.Role,
			Name:      m.Name,
			Notes:     m.Notes,
			Email:     m.Email,
			Phone:     m.Phone,
			AvatarURL: m.AvatarURL,
			SortOrder: m.SortOrder,
		}
	}
	return &out
}
