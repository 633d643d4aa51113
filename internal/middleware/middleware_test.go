package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/gig-pack/internal/config"
    "github.com/iliyamo/gig-pack/internal/utils"
)

const testSecret = "test-secret"

func newRedis(t *testing.T) *redis.Client {
    t.Helper()
    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    t.Cleanup(func() { _ = rdb.Close() })
    return rdb
}

func do(e *echo.Echo, method, path, bearer string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(method, path, nil)
    if bearer != "" {
        req.Header.Set("Authorization", "Bearer "+bearer)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestJWTAuth_SetsUserAndRole(t *testing.T) {
    e := echo.New()
    e.GET("/me", func(c echo.Context) error {
        role, _ := c.Get("role").(string)
        return c.String(http.StatusOK, UserID(c)+"/"+role)
    }, JWTAuth(testSecret))

    tok, err := utils.NewAccessToken(testSecret, "owner-1", "manager", time.Hour)
    require.NoError(t, err)

    rec := do(e, http.MethodGet, "/me", tok.Token)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "owner-1/manager", rec.Body.String())
}

func TestJWTAuth_Rejects(t *testing.T) {
    e := echo.New()
    e.GET("/me", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, JWTAuth(testSecret))

    assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/me", "").Code)

    wrong, err := utils.NewAccessToken("other-secret", "owner-1", "manager", time.Hour)
    require.NoError(t, err)
    assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/me", wrong.Token).Code)

    expired, err := utils.NewAccessToken(testSecret, "owner-1", "manager", -time.Minute)
    require.NoError(t, err)
    assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/me", expired.Token).Code)

    noSub, err := utils.NewAccessToken(testSecret, "", "manager", time.Hour)
    require.NoError(t, err)
    assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/me", noSub.Token).Code)
}

func TestRequireRole(t *testing.T) {
    e := echo.New()
    e.GET("/gigs", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
        JWTAuth(testSecret), RequireRole("manager", "admin"))

    musician, _ := utils.NewAccessToken(testSecret, "u1", "musician", time.Hour)
    manager, _ := utils.NewAccessToken(testSecret, "u1", "manager", time.Hour)
    assert.Equal(t, http.StatusForbidden, do(e, http.MethodGet, "/gigs", musician.Token).Code)
    assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/gigs", manager.Token).Code)
}

func TestNewTokenBucket_Blocks(t *testing.T) {
    rdb := newRedis(t)
    cfg := config.RateLimitConfig{Enabled: true, Capacity: 2, RefillTokens: 1, RefillInterval: time.Hour, TTL: 5 * time.Hour, Prefix: "rl"}
    e := echo.New()
    e.GET("/v1/public/gigs/:token", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
        NewTokenBucket(cfg, rdb, nil))

    assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/v1/public/gigs/a", "").Code)
    second := do(e, http.MethodGet, "/v1/public/gigs/b", "")
    assert.Equal(t, http.StatusOK, second.Code)
    assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

    blocked := do(e, http.MethodGet, "/v1/public/gigs/c", "")
    assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
    assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
}

func TestNewTokenBucket_DisabledWithoutRedis(t *testing.T) {
    e := echo.New()
    e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
        NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil, nil))
    for i := 0; i < 3; i++ {
        assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/x", "").Code)
    }
}
