package locker

import (
	"context"
	"questionnaire-service/internal/app/services/shared/redis"
	"questionnaire-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	service := NewLockService(redis.NewRedisRepository(client), zap.NewNop())

	t.Run("second lock on the same key is refused", func(t *testing.T) {
		acquired, owner, err := service.TryLock(ctx, "submit:a", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		assert.NotEmpty(t, owner)

		acquired, _, err = service.TryLock(ctx, "submit:a", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)

		require.NoError(t, service.Unlock(ctx, "submit:a", owner))
		assert.False(t, mr.Exists("submit:a"))
	})

	t.Run("unlock with a foreign value keeps the lock", func(t *testing.T) {
		acquired, _, err := service.TryLock(ctx, "submit:b", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		err = service.Unlock(ctx, "submit:b", "someone-else")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.True(t, mr.Exists("submit:b"))
	})

	t.Run("unlock after expiry is a no-op", func(t *testing.T) {
		acquired, owner, err := service.TryLock(ctx, "submit:c", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		mr.FastForward(2 * time.Second)
		assert.NoError(t, service.Unlock(ctx, "submit:c", owner))
	})
	t.Run("stale owner cannot release a lock taken over after expiry", func(t *testing.T) {
		acquired, staleOwner, err := service.TryLock(ctx, "submit:d", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		mr.FastForward(2 * time.Second)
		acquired, currentOwner, err := service.TryLock(ctx, "submit:d", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, service.Unlock(ctx, "submit:d", staleOwner), &customErr)
		assert.True(t, mr.Exists("submit:d"))

		require.NoError(t, service.Unlock(ctx, "submit:d", currentOwner))
		assert.False(t, mr.Exists("submit:d"))
	})
}
