package memory

import (
	"context"
	"time"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionStore keeps conversation state in process memory. Entries expire at
// the staleness threshold, so an abandoned booking simply falls back to idle
// on the next message.
type SessionStore struct {
	cache *cache.Cache
	*ChatLocker
}

var _ contract.SessionStore = (*SessionStore)(nil)
var _ contract.ChatLocker = (*SessionStore)(nil)

func NewSessionStore(staleAfter, sweepEvery time.Duration) *SessionStore {
	return &SessionStore{
		cache:      cache.New(staleAfter, sweepEvery),
		ChatLocker: NewChatLocker(),
	}
}

func (s *SessionStore) Get(ctx context.Context, chatID string) (*entity.ConversationState, error) {
	if x, found := s.cache.Get(chatID); found {
		state := x.(entity.ConversationState)
		return &state, nil
	}
	return entity.NewIdleState(chatID), nil
}

func (s *SessionStore) Put(ctx context.Context, state *entity.ConversationState) error {
	state.LastActivity = time.Now()
	// Stored by value so a later mutation of the caller's copy can't be seen
	// half-applied by a concurrent Get.
	s.cache.Set(state.ChatID, *state, cache.DefaultExpiration)
	return nil
}

func (s *SessionStore) Reset(ctx context.Context, chatID string) error {
	s.cache.Delete(chatID)
	return nil
}
