package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops-bot/internal/entity"
)

func TestSessionStoreUnknownChatIsIdle(t *testing.T) {
	store := NewSessionStore(time.Minute, time.Minute)

	state, err := store.Get(context.Background(), "chat-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, state.Stage)
	assert.Equal(t, "chat-1", state.ChatID)
	assert.True(t, state.Draft.IsEmpty())
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute, time.Minute)

	state := entity.NewIdleState("chat-2")
	state.Stage = entity.StageAwaitingPhone
	state.Draft.Address = "12 MG Road, Kothrud"
	require.NoError(t, store.Put(ctx, state))

	// Mutating the caller's copy must not leak into the store.
	state.Draft.Address = "mutated"

	got, err := store.Get(ctx, "chat-2")
	require.NoError(t, err)
	assert.Equal(t, entity.StageAwaitingPhone, got.Stage)
	assert.Equal(t, "12 MG Road, Kothrud", got.Draft.Address)
}

func TestSessionStoreReset(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute, time.Minute)

	state := entity.NewIdleState("chat-3")
	state.Stage = entity.StageAwaitingConfirmation
	require.NoError(t, store.Put(ctx, state))
	require.NoError(t, store.Reset(ctx, "chat-3"))

	got, err := store.Get(ctx, "chat-3")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, got.Stage)
}

func TestSessionStoreStaleEntryExpires(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(30*time.Millisecond, 10*time.Millisecond)

	state := entity.NewIdleState("chat-4")
	state.Stage = entity.StageAwaitingService
	require.NoError(t, store.Put(ctx, state))

	time.Sleep(80 * time.Millisecond)

	got, err := store.Get(ctx, "chat-4")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, got.Stage, "stale booking must fall back to idle")
}

func TestLockChatSerializesSameChat(t *testing.T) {
	store := NewSessionStore(time.Minute, time.Minute)

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.LockChat("chat-5")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestLockChatIndependentChatsDoNotBlock(t *testing.T) {
	store := NewSessionStore(time.Minute, time.Minute)

	unlockA := store.LockChat("chat-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := store.LockChat("chat-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different chat blocked")
	}
}
