package session

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func newTestService(t *testing.T, items ...string) (*Service, string) {
	t.Helper()

	service := NewService(NewStore())
	sess, err := service.Create(100, items)
	if err != nil {
		t.Fatalf("unexpected error creating session: %v", err)
	}
	return service, sess.ID
}

func TestCreateRejectsTooFewItems(t *testing.T) {
	service := NewService(NewStore())

	if _, err := service.Create(100, []string{"Rice"}); err == nil {
		t.Fatalf("expected creation failure for a single item")
	}
	if service.store.Len() != 0 {
		t.Fatalf("no session should be registered on failure")
	}
}

func TestStageOverwritesPreviousQuantity(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	for _, qty := range []int{2, 5, 3} {
		if err := service.StageSelection(id, 1, 0, qty, "A"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snap, _ := service.Snapshot(id)
	if got := snap.Pending[1]["Rice"]; got != 3 {
		t.Fatalf("expected last staged quantity 3, got %d", got)
	}
	if len(snap.Totals) != 0 {
		t.Fatalf("staging must not touch totals, got %v", snap.Totals)
	}
	if len(snap.Confirmed) != 0 {
		t.Fatalf("staging must not touch confirmed state")
	}
}

func TestStageValidation(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	if err := service.StageSelection(id, 1, 2, 1, "A"); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
	if err := service.StageSelection(id, 1, -1, 1, "A"); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex for negative index, got %v", err)
	}
	if err := service.StageSelection(id, 1, 0, 0, "A"); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := service.StageSelection(id, 1, 0, 11, "A"); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := service.StageSelection("missing", 1, 0, 1, "A"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestConfirmMovesPendingIntoTotals(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	service.StageSelection(id, 1, 0, 2, "A")
	service.StageSelection(id, 1, 1, 1, "A")

	result, err := service.ConfirmVote(id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Voted {
		t.Fatalf("expected a successful vote")
	}

	snap, _ := service.Snapshot(id)
	if snap.Totals["Rice"] != 2 || snap.Totals["Noodles"] != 1 {
		t.Fatalf("unexpected totals: %v", snap.Totals)
	}
	if len(snap.Pending[1]) != 0 {
		t.Fatalf("pending must be cleared after confirm, got %v", snap.Pending[1])
	}
	if !reflect.DeepEqual(snap.Confirmed[1], map[string]int{"Rice": 2, "Noodles": 1}) {
		t.Fatalf("unexpected confirmed state: %v", snap.Confirmed[1])
	}
}

func TestConfirmIsIdempotentPerParticipant(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	service.StageSelection(id, 1, 0, 2, "A")
	service.ConfirmVote(id, 1)

	// a stale second tap, even with fresh staged state
	service.StageSelection(id, 1, 0, 9, "A")
	result, err := service.ConfirmVote(id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.AlreadyVoted || result.Voted {
		t.Fatalf("expected already-voted no-op, got %+v", result)
	}

	snap, _ := service.Snapshot(id)
	if snap.Totals["Rice"] != 2 {
		t.Fatalf("totals must be unchanged by a repeat vote, got %v", snap.Totals)
	}
}

func TestConfirmWithoutSelection(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	if _, err := service.ConfirmVote(id, 1); !errors.Is(err, ErrNothingToConfirm) {
		t.Fatalf("expected ErrNothingToConfirm, got %v", err)
	}
}

func TestResetWithdrawsVoteFromTotals(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	service.StageSelection(id, 1, 0, 2, "A")
	service.ConfirmVote(id, 1)
	service.StageSelection(id, 2, 0, 1, "B")
	service.StageSelection(id, 2, 1, 4, "B")
	service.ConfirmVote(id, 2)

	if err := service.ResetSelections(id, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := service.Snapshot(id)
	want := map[string]int{"Rice": 1, "Noodles": 4}
	if !reflect.DeepEqual(snap.Totals, want) {
		t.Fatalf("expected totals %v after withdrawal, got %v", want, snap.Totals)
	}
	if _, voted := snap.Confirmed[1]; voted {
		t.Fatalf("participant must be removed from confirmed state")
	}

	// reset re-enables voting
	service.StageSelection(id, 1, 1, 2, "A")
	result, err := service.ConfirmVote(id, 1)
	if err != nil || !result.Voted {
		t.Fatalf("expected successful re-vote after reset, got %+v, %v", result, err)
	}
}

func TestResetUnknownParticipantIsNoop(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	if err := service.ResetSelections(id, 42); err != nil {
		t.Fatalf("resetting an unknown participant must succeed, got %v", err)
	}
}

func TestClosedSessionRejectsAllMutations(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	service.StageSelection(id, 1, 0, 2, "A")
	service.ConfirmVote(id, 1)
	service.StageSelection(id, 2, 1, 3, "B")

	before, _ := service.Snapshot(id)

	if err := service.Close(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// closing twice is a no-op
	if err := service.Close(id); err != nil {
		t.Fatalf("second close must succeed, got %v", err)
	}

	if err := service.StageSelection(id, 2, 0, 1, "B"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if _, err := service.ConfirmVote(id, 2); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if err := service.ResetSelections(id, 1); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}

	after, _ := service.Snapshot(id)
	if !reflect.DeepEqual(before.Pending, after.Pending) ||
		!reflect.DeepEqual(before.Confirmed, after.Confirmed) ||
		!reflect.DeepEqual(before.Totals, after.Totals) {
		t.Fatalf("state must be untouched after rejected mutations")
	}
	if after.Status != StatusClosed {
		t.Fatalf("expected CLOSED status, got %s", after.Status)
	}
}

func TestStageNeverStoresZero(t *testing.T) {
	service, id := newTestService(t, "Rice", "Noodles")

	service.StageSelection(id, 1, 0, 2, "A")
	service.ConfirmVote(id, 1)

	snap, _ := service.Snapshot(id)
	for item, qty := range snap.Totals {
		if qty == 0 {
			t.Fatalf("zero-quantity entry stored for %q", item)
		}
	}
	if _, ok := snap.Totals["Noodles"]; ok {
		t.Fatalf("unselected item must be absent, got %v", snap.Totals)
	}
}

func TestConcurrentVotesLoseNothing(t *testing.T) {
	const participants = 50

	service, id := newTestService(t, "Rice", "Noodles")

	var wg sync.WaitGroup
	for p := 1; p <= participants; p++ {
		wg.Add(1)
		go func(p int64) {
			defer wg.Done()

			name := fmt.Sprintf("user-%d", p)
			if err := service.StageSelection(id, p, int(p%2), 1, name); err != nil {
				t.Errorf("stage failed for %d: %v", p, err)
				return
			}
			if _, err := service.ConfirmVote(id, p); err != nil {
				t.Errorf("confirm failed for %d: %v", p, err)
			}
		}(int64(p))
	}
	wg.Wait()

	snap, _ := service.Snapshot(id)
	total := snap.Totals["Rice"] + snap.Totals["Noodles"]
	if total != participants {
		t.Fatalf("expected %d total confirmed units, got %d (%v)", participants, total, snap.Totals)
	}
}

func TestDuplicateSessionIDPanics(t *testing.T) {
	store := NewStore()
	store.Create(newSession("dup", []string{"Rice", "Noodles"}, 1))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate session id")
		}
	}()
	store.Create(newSession("dup", []string{"Rice", "Noodles"}, 1))
}
