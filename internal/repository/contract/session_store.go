package contract

import (
	"context"

	"laundryops-bot/internal/entity"
)

// SessionStore holds per-chat conversation state. Implementations must make
// Put atomic per key: a concurrent Get for the same chat sees either the old
// or the new state, never a partial one.
type SessionStore interface {
	// Get returns the state for a chat identity, creating an idle state when
	// none exists or the stored one has gone stale.
	Get(ctx context.Context, chatID string) (*entity.ConversationState, error)

	// Put replaces the state and refreshes its staleness clock.
	Put(ctx context.Context, state *entity.ConversationState) error

	// Reset discards any state for the chat identity.
	Reset(ctx context.Context, chatID string) error
}

// ChatLocker serializes message handling per chat identity so two concurrent
// messages from one user cannot interleave their state transitions. Locks for
// different chat identities are independent.
type ChatLocker interface {
	// LockChat blocks until the chat's lock is held and returns the unlock.
	LockChat(chatID string) (unlock func())
}
