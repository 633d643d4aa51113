package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-pack/internal/gigpack"
)

// PublicHandler serves the read-only gig view behind a share token.  No
// authentication is required; the token is the credential.
type PublicHandler struct {
    Projector *gigpack.Projector
    Log       *zap.Logger
}

// PublicGigPath is the public URL path of a share token.
func PublicGigPath(token string) string { return "/v1/public/gigs/" + token }

// GetSharedGig returns the stripped GigPack behind :token.  Unknown,
// revoked and expired tokens all answer 404.
// GET /v1/public/gigs/:token
func (h *PublicHandler) GetSharedGig(c echo.Context) error {
    pack, err := h.Projector.Resolve(c.Request().Context(), c.Param("token"))
    if err != nil {
        return writeError(c, h.Log, err)
    }
    if pack == nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "share link not found or expired"})
    }
    return c.JSON(http.StatusOK, pack)
}
