package session

import (
	"fmt"
	"sync"
)

// Store is the shared in-memory collection of menu sessions. Its lock only
// covers the map itself; each session carries its own lock, so operations
// on different sessions run fully in parallel. A session is never replaced
// after creation, only mutated in place, so references obtained from Get
// stay valid for the process lifetime.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session. Creating a second session under an
// existing id is a caller contract violation, not a recoverable condition.
func (s *Store) Create(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		panic(fmt.Sprintf("session %q already exists", sess.ID))
	}
	s.sessions[sess.ID] = sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// ForEach calls fn for every registered session. The session list is
// copied under the lock and fn runs outside it, so fn may take session
// locks freely.
func (s *Store) ForEach(fn func(*Session)) {
	s.mu.RLock()
	all := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.RUnlock()

	for _, sess := range all {
		fn(sess)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
