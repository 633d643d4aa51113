package config

import "time"

// RateLimitConfig configures the token bucket in front of the public share
// route.  Tokens are guessable only by brute force, so the bucket is keyed
// by client IP.
type RateLimitConfig struct {
    Enabled        bool
    Capacity       int
    RefillTokens   int
    RefillInterval time.Duration
    TTL            time.Duration
    Prefix         string
}

// LoadRateLimitConfig reads SHARE_RATE_LIMIT_* variables and clamps them to
// sane minimums.
func LoadRateLimitConfig() RateLimitConfig {
    c := RateLimitConfig{
        Enabled:        envBool("SHARE_RATE_LIMIT_ENABLED", true),
        Capacity:       envInt("SHARE_RATE_LIMIT_CAPACITY", 30),
        RefillTokens:   envInt("SHARE_RATE_LIMIT_REFILL_TOKENS", 1),
        RefillInterval: envDur("SHARE_RATE_LIMIT_REFILL_INTERVAL", 2*time.Second),
        TTL:            envDur("SHARE_RATE_LIMIT_TTL", 10*time.Minute),
        Prefix:         getenv("SHARE_RATE_LIMIT_PREFIX", "gigpack:rl"),
    }
    if c.Capacity < 1 {
        c.Capacity = 1
    }
    if c.RefillTokens < 1 {
        c.RefillTokens = 1
    }
    if c.RefillInterval <= 0 {
        c.RefillInterval = time.Second
    }
    if minTTL := 5 * c.RefillInterval; c.TTL < minTTL {
        c.TTL = minTTL
    }
    return c
}
