package scheduler

import "sync"

// Registry holds the chats subscribed to the daily menu prompt. Chats
// subscribe with /start; the set lives for the process lifetime only.
type Registry struct {
	mu    sync.Mutex
	chats map[int64]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		chats: make(map[int64]struct{}),
	}
}

func (r *Registry) Add(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats[chatID] = struct{}{}
}

func (r *Registry) Remove(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chats, chatID)
}

// Chats returns a copy of the subscribed chat ids.
func (r *Registry) Chats() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.chats))
	for id := range r.chats {
		ids = append(ids, id)
	}
	return ids
}
