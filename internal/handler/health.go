package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes and response helpers

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a liveness probe for load balancers and monitoring.  It does
// not touch the store.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}
