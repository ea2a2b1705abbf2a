package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// SessionStore persists conversation state in Redis so a redeploy doesn't
// drop in-progress bookings. Key TTL doubles as the staleness threshold.
type SessionStore struct {
	client     *redis.Client
	keyBase    string
	staleAfter time.Duration
}

var _ contract.SessionStore = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client, keyBase string, staleAfter time.Duration) *SessionStore {
	return &SessionStore{
		client:     client,
		keyBase:    keyBase,
		staleAfter: staleAfter,
	}
}

func (s *SessionStore) key(chatID string) string {
	return fmt.Sprintf("%s:%s", s.keyBase, chatID)
}

func (s *SessionStore) Get(ctx context.Context, chatID string) (*entity.ConversationState, error) {
	raw, err := s.client.Get(ctx, s.key(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewIdleState(chatID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var state entity.ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt record should not wedge the chat; start over.
		return entity.NewIdleState(chatID), nil
	}
	return &state, nil
}

func (s *SessionStore) Put(ctx context.Context, state *entity.ConversationState) error {
	state.LastActivity = time.Now()
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(state.ChatID), raw, s.staleAfter).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *SessionStore) Reset(ctx context.Context, chatID string) error {
	if err := s.client.Del(ctx, s.key(chatID)).Err(); err != nil {
		return fmt.Errorf("session reset: %w", err)
	}
	return nil
}
