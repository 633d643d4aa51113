package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/gig-pack/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication:
// the health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the shared gig view.  mws wrap only this route,
// typically the rate limiter.
func RegisterPublic(e *echo.Echo, h *handler.PublicHandler, mws ...echo.MiddlewareFunc) {
    e.GET("/v1/public/gigs/:token", h.GetSharedGig, mws...)
}
