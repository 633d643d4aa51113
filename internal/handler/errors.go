package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/gig-pack/internal/gigpack"
    "github.com/iliyamo/gig-pack/internal/repository"
)

// writeError maps domain and repository errors to HTTP responses.
// Anything unrecognised is logged and reported as a 500 without detail.
func writeError(c echo.Context, log *zap.Logger, err error) error {
    if log == nil {
        log = zap.NewNop()
    }
    switch {
    case errors.Is(err, gigpack.ErrInvalidPack):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrGigNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "gig not found"})
    case errors.Is(err, repository.ErrShareNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "share not found"})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": "conflict"})
    }
    log.Error("request failed",
        zap.String("method", c.Request().Method),
        zap.String("path", c.Path()),
        zap.Error(err))
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
