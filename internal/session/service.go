package session

import (
	"log"

	"github.com/google/uuid"

	"github.com/HenTyna/foot-auto-poll-bot/internal/menu"
)

// Service owns session lifecycle and the aggregation operations. It is the
// only writer of session state; everything above it (transport, HTTP API)
// works with snapshots.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Create validates the catalog, registers a new OPEN session and returns
// it. Fewer than two items is a creation failure and nothing is registered.
func (s *Service) Create(chatID int64, items []string) (*Session, error) {
	if err := menu.ValidateCatalog(items); err != nil {
		return nil, err
	}

	sess := newSession(uuid.New().String(), items, chatID)
	s.store.Create(sess)

	log.Printf("[SESSION] created %s with %d items", sess.ID, len(items))
	return sess, nil
}

// StageSelection records an unconfirmed quantity for one item. Overwrite
// semantics: staging the same item twice keeps only the last quantity.
func (s *Service) StageSelection(sessionID string, participant int64, itemIndex, quantity int, displayName string) error {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return err
	}
	return sess.Stage(participant, itemIndex, quantity, displayName)
}

// ConfirmVote promotes a participant's staged selections into the global
// totals. At most one vote per participant until they reset.
func (s *Service) ConfirmVote(sessionID string, participant int64) (VoteResult, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return VoteResult{}, err
	}

	result, err := sess.Confirm(participant)
	if err == nil && result.Voted {
		log.Printf("[SESSION] %s participant %d voted", sessionID, participant)
	}
	return result, err
}

// ResetSelections drops a participant's pending and confirmed state,
// withdrawing their contribution to the totals if they had voted.
func (s *Service) ResetSelections(sessionID string, participant int64) error {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return err
	}
	return sess.Reset(participant)
}

// Close transitions the session to CLOSED. Idempotent.
func (s *Service) Close(sessionID string) error {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return err
	}

	sess.Close()
	log.Printf("[SESSION] %s closed", sessionID)
	return nil
}

// Snapshot returns a consistent deep copy of the session state.
func (s *Service) Snapshot(sessionID string) (Snapshot, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Snapshots returns a consistent snapshot of every registered session.
func (s *Service) Snapshots() []Snapshot {
	var snaps []Snapshot
	s.store.ForEach(func(sess *Session) {
		snaps = append(snaps, sess.Snapshot())
	})
	return snaps
}
