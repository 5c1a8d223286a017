package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAsideMissFetchesAndWritesBack(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetched := 0
	var got cachedThing
	err := Aside(ctx, NewsKey(7), &got, NewsTTL, func() error {
		fetched++
		got = cachedThing{ID: 7, Name: "from db"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, "from db", got.Name)

	// The miss must have populated the cache.
	assert.True(t, mr.Exists(NewsKey(7)))

	// Second lookup is served from Redis without calling fetch.
	var again cachedThing
	err = Aside(ctx, NewsKey(7), &again, NewsTTL, func() error {
		fetched++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, got, again)
}

func TestAsideFetchErrorSkipsWriteBack(t *testing.T) {
	mr := setupMiniredis(t)

	var got cachedThing
	err := Aside(context.Background(), NewsKey(1), &got, NewsTTL, func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, mr.Exists(NewsKey(1)))
}

func TestAsideUnreachableCacheFallsBackToFetch(t *testing.T) {
	// Nothing listens here; every command fails with a transport error.
	SetClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	t.Cleanup(func() { SetClient(nil) })

	var got cachedThing
	err := Aside(context.Background(), NewsKey(4), &got, NewsTTL, func() error {
		got = cachedThing{ID: 4, Name: "from db"}
		return nil
	})
	require.NoError(t, err, "a broken cache must degrade to the store")
	assert.Equal(t, "from db", got.Name)
}

func TestInvalidateRemovesKey(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedThing{ID: 3}, UserTTL))
	require.True(t, mr.Exists(UserKey(3)))

	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}

func TestSetJSONAppliesTTL(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, NewsKey(9), cachedThing{ID: 9}, 30*time.Minute))

	mr.FastForward(31 * time.Minute)
	found, err := GetJSON(ctx, NewsKey(9), &cachedThing{})
	require.NoError(t, err)
	assert.False(t, found, "entry should expire after its TTL")
}

func TestHelpersSafeWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, NewsKey(1), &cachedThing{})
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, NewsKey(1), cachedThing{}, time.Minute))
	InvalidateNews(ctx, 1)
}
