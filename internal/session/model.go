package session

import (
	"sync"
	"time"
)

// Status of a menu session
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// Quantity bounds for a single item selection
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Session is one menu instance with its own item catalog and aggregation
// state. All mutable fields are guarded by mu; every mutating operation
// holds it for its whole read-modify-write unit so totals never reflect a
// partially applied vote.
type Session struct {
	ID        string
	Items     []string
	ChatID    int64
	CreatedAt time.Time

	mu     sync.RWMutex
	status Status

	// staged, unconfirmed quantities per participant
	pending map[int64]map[string]int

	// voted quantities per participant; a key present here means the
	// participant has voted
	confirmed map[int64]map[string]int

	// per-item sums over confirmed participants, rebuilt on every vote
	// and reset
	totals map[string]int

	// last-known display name per participant, presentation only
	names map[int64]string

	// transport bookkeeping
	menuMessageID     int
	keyboardMessageID int
}

func newSession(id string, items []string, chatID int64) *Session {
	return &Session{
		ID:        id,
		Items:     items,
		ChatID:    chatID,
		CreatedAt: time.Now(),
		status:    StatusOpen,
		pending:   make(map[int64]map[string]int),
		confirmed: make(map[int64]map[string]int),
		totals:    make(map[string]int),
		names:     make(map[int64]string),
	}
}

// VoteResult reports the outcome of a confirm call. AlreadyVoted is not an
// error: re-tapping vote is expected and must not disturb totals.
type VoteResult struct {
	Voted        bool
	AlreadyVoted bool
}

// Stage records an unconfirmed quantity for one item. Repeated staging of
// the same item overwrites the previous quantity. Confirmed state and
// totals are untouched.
func (s *Session) Stage(participant int64, itemIndex, quantity int, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusClosed {
		return ErrSessionClosed
	}
	if itemIndex < 0 || itemIndex >= len(s.Items) {
		return ErrInvalidIndex
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}

	if displayName != "" {
		s.names[participant] = displayName
	}

	item := s.Items[itemIndex]
	if s.pending[participant] == nil {
		s.pending[participant] = make(map[string]int)
	}
	s.pending[participant][item] = quantity

	return nil
}

// Confirm promotes a participant's pending selections to a vote. A
// participant who already voted gets an AlreadyVoted result and no state
// change; voting again requires a reset first.
func (s *Session) Confirm(participant int64) (VoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusClosed {
		return VoteResult{}, ErrSessionClosed
	}

	if _, voted := s.confirmed[participant]; voted {
		return VoteResult{AlreadyVoted: true}, nil
	}

	staged := s.pending[participant]
	if len(staged) == 0 {
		return VoteResult{}, ErrNothingToConfirm
	}

	order := make(map[string]int, len(staged))
	for item, qty := range staged {
		order[item] = qty
	}

	s.confirmed[participant] = order
	delete(s.pending, participant)
	s.recomputeTotals()

	return VoteResult{Voted: true}, nil
}

// Reset withdraws both the pending and the confirmed state of a
// participant. Removing a participant who never selected anything is a
// no-op, so reset is always safe to offer.
func (s *Session) Reset(participant int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusClosed {
		return ErrSessionClosed
	}

	delete(s.pending, participant)
	if _, voted := s.confirmed[participant]; voted {
		delete(s.confirmed, participant)
		s.recomputeTotals()
	}

	return nil
}

// Close transitions the session to CLOSED. One-way and idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusClosed
}

// recomputeTotals rebuilds totals from scratch over all confirmed
// participants. Caller must hold mu. Totals are never adjusted
// incrementally.
func (s *Session) recomputeTotals() {
	totals := make(map[string]int)
	for _, order := range s.confirmed {
		for item, qty := range order {
			totals[item] += qty
		}
	}
	s.totals = totals
}

// SetMessageIDs stores the transport message ids for later edits.
func (s *Session) SetMessageIDs(menuMessageID, keyboardMessageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuMessageID = menuMessageID
	s.keyboardMessageID = keyboardMessageID
}
