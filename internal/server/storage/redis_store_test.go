package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)
	return store, mr
}

func TestRedisStore_SaveLoadDeleteRoom(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	roomData := &RoomData{
		ID:           "table-1",
		InitialChips: 500,
		Pot:          150,
		Players: []PlayerData{
			{ID: "c1", Name: "Alice", Chips: 400, Bet: 100},
			{ID: "c2", Name: "Bob", Chips: 450, Bet: 50},
		},
		Logs:      []string{"Bob bet 50", "Alice bet 100"},
		HostID:    "c1",
		CreatedAt: time.Now().Unix(),
	}

	// Save
	err := store.SaveRoom(ctx, roomData.ID, roomData)
	require.NoError(t, err)

	// Load
	loaded, err := store.LoadRoom(ctx, roomData.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, roomData.ID, loaded.ID)
	assert.Equal(t, int64(150), loaded.Pot)
	assert.Equal(t, "c1", loaded.HostID)
	require.Len(t, loaded.Players, 2)
	assert.Equal(t, "Alice", loaded.Players[0].Name)
	assert.Equal(t, int64(400), loaded.Players[0].Chips)

	// Delete
	err = store.DeleteRoom(ctx, roomData.ID)
	require.NoError(t, err)

	loaded, err = store.LoadRoom(ctx, roomData.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_LoadMissingRoom(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()

	loaded, err := store.LoadRoom(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_GetAllRoomIDs(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "a", &RoomData{ID: "a"}))
	require.NoError(t, store.SaveRoom(ctx, "b", &RoomData{ID: "b"}))

	ids, err := store.GetAllRoomIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestRedisStore_SnapshotExpires(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "a", &RoomData{ID: "a"}))

	mr.FastForward(3 * time.Hour)

	loaded, err := store.LoadRoom(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
