package middleware

import "github.com/labstack/echo/v4"

// UserID returns the authenticated user id stored by JWTAuth, or "" on
// routes without authentication.
func UserID(c echo.Context) string {
    if s, ok := c.Get(ctxUserID).(string); ok {
        return s
    }
    return ""
}

// rateSubject identifies the caller for rate limiting: the user when
// authenticated, the client IP otherwise.
func rateSubject(c echo.Context) string {
    if id := UserID(c); id != "" {
        return "user:" + id
    }
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    return "ip:" + ip
}
