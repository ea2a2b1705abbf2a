package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops-bot/internal/entity"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(client, "laundryops:session", 30*time.Minute), mr
}

func TestRedisSessionStoreUnknownChatIsIdle(t *testing.T) {
	store, _ := newTestStore(t)

	state, err := store.Get(context.Background(), "chat-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, state.Stage)
	assert.Equal(t, "chat-1", state.ChatID)
}

func TestRedisSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	state := entity.NewIdleState("chat-2")
	state.Stage = entity.StageAwaitingWeightOrPiece
	state.Draft.Address = "baner, pune"
	state.Draft.ServiceChoice = "wash_iron"
	require.NoError(t, store.Put(ctx, state))

	got, err := store.Get(ctx, "chat-2")
	require.NoError(t, err)
	assert.Equal(t, entity.StageAwaitingWeightOrPiece, got.Stage)
	assert.Equal(t, "baner, pune", got.Draft.Address)
	assert.Equal(t, "wash_iron", got.Draft.ServiceChoice)

	// TTL doubles as the staleness threshold.
	ttl := mr.TTL("laundryops:session:chat-2")
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestRedisSessionStoreStaleEntryExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	state := entity.NewIdleState("chat-3")
	state.Stage = entity.StageAwaitingConfirmation
	require.NoError(t, store.Put(ctx, state))

	mr.FastForward(31 * time.Minute)

	got, err := store.Get(ctx, "chat-3")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, got.Stage, "expired booking must fall back to idle")
}

func TestRedisSessionStoreReset(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	state := entity.NewIdleState("chat-4")
	state.Stage = entity.StageAwaitingPhone
	require.NoError(t, store.Put(ctx, state))
	require.NoError(t, store.Reset(ctx, "chat-4"))

	got, err := store.Get(ctx, "chat-4")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, got.Stage)
}

func TestRedisSessionStoreCorruptRecordStartsOver(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("laundryops:session:chat-5", "{not json"))

	got, err := store.Get(ctx, "chat-5")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, got.Stage)
}
