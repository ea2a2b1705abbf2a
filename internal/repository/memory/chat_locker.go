package memory

import "sync"

// ChatLocker serializes message handling per chat identity with one mutex per
// chat. Lock entries are never evicted; the set of active chats is small
// enough that this doesn't matter.
type ChatLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewChatLocker() *ChatLocker {
	return &ChatLocker{locks: make(map[string]*sync.Mutex)}
}

// LockChat blocks until the chat's lock is held. Different chat identities
// never contend.
func (l *ChatLocker) LockChat(chatID string) func() {
	l.mu.Lock()
	m, ok := l.locks[chatID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[chatID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
