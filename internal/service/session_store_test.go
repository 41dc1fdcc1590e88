package service

import (
	"context"
	"testing"
	"time"

	"explore_ia_backend/internal/quiz"
	"explore_ia_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(time.Minute)
	store.now = func() time.Time { return now }

	key := SessionKey{UserID: 1, Module: "introducao"}
	snap := quiz.Snapshot{UserID: 1, Module: "introducao", State: quiz.StateAwaitingAnswer, Score: 0}
	require.NoError(t, store.Save(ctx, key, snap))

	got, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, snap.Module, got.Module)

	now = now.Add(2 * time.Minute)
	_, err = store.Load(ctx, key)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemorySessionStoreSweepsOnSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(time.Minute)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, SessionKey{UserID: 1, Module: "a"}, quiz.Snapshot{}))
	now = now.Add(5 * time.Minute)
	require.NoError(t, store.Save(ctx, SessionKey{UserID: 2, Module: "a"}, quiz.Snapshot{}))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, SessionKey{UserID: 2, Module: "a"}))
	assert.Equal(t, 0, store.Len())
}

func TestRedisSessionKey(t *testing.T) {
	store := NewRedisSessionStore(nil, time.Hour)
	assert.Equal(t, "explore_ia:quiz:7:ia-etica", store.redisKey(SessionKey{UserID: 7, Module: "ia-etica"}))
}

func TestKeyLocksReleaseEntries(t *testing.T) {
	var k keyLocks
	unlock := k.lock("a")
	unlock()
	assert.Empty(t, k.locks)
}
