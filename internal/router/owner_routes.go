package router // router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/gig-pack/internal/handler"    // gig pack handlers
    "github.com/iliyamo/gig-pack/internal/middleware" // JWT + role middlewares
)

// RegisterOwner registers the gig manager endpoints under /v1.  All routes
// require a valid JWT; when roles are given the token's role must be one of
// them.  Ownership of the individual gig is checked by the handler.
func RegisterOwner(e *echo.Echo, h *handler.GigHandler, jwtSecret string, roles ...string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(roles...),
    )

    // ---- Gig packs ----
    g.POST("/gigs", h.Create)
    g.GET("/gigs/:id/pack", h.GetPack)
    g.PUT("/gigs/:id/pack", h.SavePack)

    // ---- Share links ----
    g.POST("/gigs/:id/shares", h.CreateShare)
    g.DELETE("/shares/:token", h.RevokeShare)
}
