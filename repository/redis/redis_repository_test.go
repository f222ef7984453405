package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisrepo "github.com/muhammadheryan/humidor-club/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (redisrepo.RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), mr
}

func TestRedis_Session(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-1", 42, time.Hour))
	id, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	mr.FastForward(2 * time.Hour)
	_, err = repo.GetSession(ctx, "jti-1")
	assert.ErrorIs(t, err, redisrepo.ErrNotFound)

	require.NoError(t, repo.SetSession(ctx, "jti-2", 7, time.Hour))
	require.NoError(t, repo.DeleteSession(ctx, "jti-2"))
	_, err = repo.GetSession(ctx, "jti-2")
	assert.ErrorIs(t, err, redisrepo.ErrNotFound)
}

func TestRedis_MagicLinkIsSingleUse(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()
	entry := &redisrepo.MagicLinkEntry{Email: "a@b.co", SecretHash: "$2a$hash"}

	require.NoError(t, repo.SetMagicLink(ctx, "tok", entry, 15*time.Minute))
	assert.True(t, mr.Exists("magic_link:tok"))

	got, err := repo.ConsumeMagicLink(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, entry, got)
	assert.False(t, mr.Exists("magic_link:tok"))

	_, err = repo.ConsumeMagicLink(ctx, "tok")
	assert.ErrorIs(t, err, redisrepo.ErrNotFound)
}

func TestRedis_MagicLinkExpires(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetMagicLink(ctx, "tok", &redisrepo.MagicLinkEntry{Email: "a@b.co"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.ConsumeMagicLink(ctx, "tok")
	assert.ErrorIs(t, err, redisrepo.ErrNotFound)
}
