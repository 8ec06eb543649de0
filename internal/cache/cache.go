package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a Redis-backed lookaside cache for user records. It never fails a
// request on cache trouble: an unreachable Redis, a nil Client, or any
// command error all degrade into a miss, and callers fall through to the
// database.
type Client struct {
	client *redis.Client
}

// New connects a cache client to the given Redis instance.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached value, or nil on a miss. Redis errors read as misses.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors alike
		return nil, nil
	}
	return res, nil
}

// Set stores a value under key for ttl. Redis errors are swallowed.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Set(ctx, key, value, ttl)
	return nil
}

// Delete invalidates key. Redis errors are swallowed; the entry expires on
// its TTL anyway.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	c.client.Del(ctx, key)
	return nil
}
