package config

// Redis backs the public rate limiter.  The limiter degrades to
// pass-through when no client is available, so a failed connection at
// startup is reported and otherwise tolerated.

import (
    "context"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient connects to rawURL (redis:// or rediss://).  An empty URL
// returns (nil, nil): Redis is optional.  A client that fails its startup
// ping is closed and returned as an error.
func NewRedisClient(ctx context.Context, rawURL string) (*redis.Client, error) {
    if rawURL == "" {
        return nil, nil
    }
    opts, err := redis.ParseURL(rawURL)
    if err != nil {
        return nil, fmt.Errorf("parse REDIS_URL: %w", err)
    }
    client := redis.NewClient(opts)
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil, fmt.Errorf("redis ping: %w", err)
    }
    return client, nil
}
