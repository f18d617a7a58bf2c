package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servekit/pkg/redis"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Open(redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Open(redis.Config{URL: "ftp://localhost"})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		client, err := redis.Open(redis.Config{URL: "redis://127.0.0.1:1/0", DialTimeout: 500 * time.Millisecond})
		require.NoError(t, err, "opening must not dial")
		defer client.Close()

		err = redis.Healthcheck(client, time.Second)(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	})
}
