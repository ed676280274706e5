package session

import (
	"context"
	"questionnaire-service/internal/app/services/shared/redis"
	"questionnaire-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewSessionRepository(redis.NewRedisRepository(client), time.Hour, zap.NewNop())

	t.Run("no override stored", func(t *testing.T) {
		index, err := repo.FindGroupIndex(ctx, "Patient/1", "intake")
		require.NoError(t, err)
		assert.Nil(t, index)
	})

	t.Run("save then find", func(t *testing.T) {
		require.NoError(t, repo.SaveGroupIndex(ctx, "Patient/1", "intake", 3))

		index, err := repo.FindGroupIndex(ctx, "Patient/1", "intake")
		require.NoError(t, err)
		require.NotNil(t, index)
		assert.Equal(t, 3, *index)

		key := utils.GenerateSessionKey("Patient/1", "intake")
		assert.Equal(t, time.Hour, mr.TTL(key))
	})

	t.Run("sessions are scoped by subject", func(t *testing.T) {
		index, err := repo.FindGroupIndex(ctx, "Patient/2", "intake")
		require.NoError(t, err)
		assert.Nil(t, index)
	})

	t.Run("delete clears the override", func(t *testing.T) {
		require.NoError(t, repo.DeleteGroupIndex(ctx, "Patient/1", "intake"))

		index, err := repo.FindGroupIndex(ctx, "Patient/1", "intake")
		require.NoError(t, err)
		assert.Nil(t, index)
	})

	t.Run("unreadable values are treated as missing", func(t *testing.T) {
		key := utils.GenerateSessionKey("Patient/3", "intake")
		require.NoError(t, mr.Set(key, "not-json"))

		index, err := repo.FindGroupIndex(ctx, "Patient/3", "intake")
		require.NoError(t, err)
		assert.Nil(t, index)
	})
}
