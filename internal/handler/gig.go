// Package handler exposes the HTTP handlers of the gig pack API.  Owner
// handlers live in this file; the public share view is in public.go.
package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-pack/internal/gigpack"
    "github.com/iliyamo/gig-pack/internal/middleware"
    "github.com/iliyamo/gig-pack/internal/model"
    "github.com/iliyamo/gig-pack/internal/repository"
)

// maxShareTTL caps expiresInHours on new share links.
const maxShareTTL = 365 * 24 * time.Hour

// GigHandler serves the owner-facing gig pack endpoints.  Every route
// checks that the authenticated user owns the gig.
type GigHandler struct {
    Gigs       gigpack.Reader
    Shares     gigpack.ShareStore
    Aggregator *gigpack.Aggregator
    Reconciler *gigpack.Reconciler
    Projector  *gigpack.Projector
    Log        *zap.Logger
}

// gigRow is the JSON form of a stored gig returned after a save.
type gigRow struct {
    ID           string    `json:"id"`
    OwnerID      string    `json:"ownerId"`
    Title        string    `json:"title"`
    Date         *string   `json:"date,omitempty"`
    CallTime     *string   `json:"callTime,omitempty"`
    VenueName    *string   `json:"venueName,omitempty"`
    VenueAddress *string   `json:"venueAddress,omitempty"`
    BandName     *string   `json:"bandName,omitempty"`
    GigType      *string   `json:"gigType,omitempty"`
    HeroImage    *string   `json:"heroImage,omitempty"`
    Theme        *string   `json:"theme,omitempty"`
    CreatedAt    time.Time `json:"createdAt"`
    UpdatedAt    time.Time `json:"updatedAt"`
}

type lineupDiff struct {
    Inserted []string `json:"inserted"`
    Updated  []string `json:"updated"`
    Deleted  []string `json:"deleted"`
}

type saveResponse struct {
    Gig    gigRow     `json:"gig"`
    Lineup lineupDiff `json:"lineup"`
}

func newSaveResponse(res *gigpack.SaveResult) saveResponse {
    g := res.Gig
    return saveResponse{
        Gig: gigRow{
            ID:           g.ID,
            OwnerID:      g.OwnerID,
            Title:        g.Title,
            Date:         g.Date,
            CallTime:     g.CallTime,
            VenueName:    g.VenueName,
            VenueAddress: g.VenueAddress,
            BandName:     g.BandName,
            GigType:      g.GigType,
            HeroImage:    g.HeroImageURL,
            Theme:        g.Theme,
            CreatedAt:    g.CreatedAt,
            UpdatedAt:    g.UpdatedAt,
        },
        Lineup: lineupDiff{
            Inserted: nonNil(res.LineupInserted),
            Updated:  nonNil(res.LineupUpdated),
            Deleted:  nonNil(res.LineupDeleted),
        },
    }
}

func nonNil(ids []string) []string {
    if ids == nil {
        return []string{}
    }
    return ids
}

// authorize loads gig id and checks that the caller owns it.
func (h *GigHandler) authorize(c echo.Context, id string) (*model.Gig, error) {
    gig, err := h.Gigs.GetGig(c.Request().Context(), id)
    if err != nil {
        return nil, err
    }
    if gig == nil {
        return nil, repository.ErrGigNotFound
    }
    if gig.OwnerID != middleware.UserID(c) {
        return nil, repository.ErrForbidden
    }
    return gig, nil
}

// GetPack returns the full GigPack of a gig owned by the caller.
// GET /v1/gigs/:id/pack
func (h *GigHandler) GetPack(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.authorize(c, id); err != nil {
        return writeError(c, h.Log, err)
    }
    pack, err := h.Aggregator.Load(c.Request().Context(), id)
    if err != nil {
        return writeError(c, h.Log, err)
    }
    if pack == nil {
        return writeError(c, h.Log, repository.ErrGigNotFound)
    }
    return c.JSON(http.StatusOK, pack)
}

// Create stores a new gig from a GigPack body.  The caller becomes the
// owner.
// POST /v1/gigs
func (h *GigHandler) Create(c echo.Context) error {
    var pack gigpack.GigPack
    if err := c.Bind(&pack); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
    }
    res, err := h.Reconciler.Save(c.Request().Context(), gigpack.SaveRequest{
        GigID:   uuid.NewString(),
        OwnerID: middleware.UserID(c),
        Pack:    &pack,
        IsNew:   true,
    })
    if err != nil {
        return writeError(c, h.Log, err)
    }
    return c.JSON(http.StatusCreated, newSaveResponse(res))
}

// SavePack applies an edited GigPack to an existing gig.  Child
// collections missing from the body are left untouched.
// PUT /v1/gigs/:id/pack
func (h *GigHandler) SavePack(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.authorize(c, id); err != nil {
        return writeError(c, h.Log, err)
    }
    var pack gigpack.GigPack
    if err := c.Bind(&pack); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
    }
    res, err := h.Reconciler.Save(c.Request().Context(), gigpack.SaveRequest{GigID: id, Pack: &pack})
    if err != nil {
        return writeError(c, h.Log, err)
    }
    return c.JSON(http.StatusOK, newSaveResponse(res))
}

type createShareRequest struct {
    ExpiresInHours *int `json:"expiresInHours"`
}

type shareResponse struct {
    Token     string     `json:"token"`
    GigID     string     `json:"gigId"`
    Path      string     `json:"path"`
    ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// CreateShare issues a read-only share link.  Without expiresInHours the
// link never expires.
// POST /v1/gigs/:id/shares
func (h *GigHandler) CreateShare(c echo.Context) error {
    id := c.Param("id")
    if _, err := h.authorize(c, id); err != nil {
        return writeError(c, h.Log, err)
    }
    var req createShareRequest
    if c.Request().ContentLength != 0 {
        if err := c.Bind(&req); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
        }
    }
    var ttl time.Duration
    if req.ExpiresInHours != nil {
        ttl = time.Duration(*req.ExpiresInHours) * time.Hour
        if ttl <= 0 || ttl > maxShareTTL {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "expiresInHours must be between 1 and 8760"})
        }
    }
    tok, err := h.Projector.Issue(c.Request().Context(), id, ttl)
    if err != nil {
        return writeError(c, h.Log, err)
    }
    return c.JSON(http.StatusCreated, shareResponse{
        Token:     tok.Token,
        GigID:     tok.GigID,
        Path:      PublicGigPath(tok.Token),
        ExpiresAt: tok.ExpiresAt,
    })
}

// RevokeShare deactivates a share link of a gig owned by the caller.
// DELETE /v1/shares/:token
func (h *GigHandler) RevokeShare(c echo.Context) error {
    ctx := c.Request().Context()
    token := c.Param("token")
    share, err := h.Shares.GetShareToken(ctx, token)
    if err != nil {
        return writeError(c, h.Log, err)
    }
    if _, err := h.authorize(c, share.GigID); err != nil {
        // Links of other owners' gigs answer like unknown ones.
        if errors.Is(err, repository.ErrGigNotFound) || errors.Is(err, repository.ErrForbidden) {
            err = repository.ErrShareNotFound
        }
        return writeError(c, h.Log, err)
    }
    if err := h.Projector.Revoke(ctx, token); err != nil {
        return writeError(c, h.Log, err)
    }
    return c.NoContent(http.StatusNoContent)
}
