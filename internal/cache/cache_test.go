package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Services hold a *Client that may be nil when caching is disabled; every
// operation must be a safe no-op in that case.
func TestNilClientIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *Client

	val, err := c.Get(ctx, "user:missing")
	assert.NoError(t, err)
	assert.Nil(t, val)

	assert.NoError(t, c.Set(ctx, "user:missing", []byte("{}"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "user:missing"))
}
