package order

import (
	"github.com/HenTyna/foot-auto-poll-bot/internal/core"
	"github.com/HenTyna/foot-auto-poll-bot/internal/session"
)

// BuildCombinedView blends confirmed totals with the pending quantities of
// participants who have not voted yet: the live display shows what the
// order would be if everyone still deciding voted as-is. Voted
// participants have no pending state (cleared on confirm), so nothing is
// double-counted.
func BuildCombinedView(snap session.Snapshot) map[string]int {
	view := make(map[string]int, len(snap.Totals))
	for item, qty := range snap.Totals {
		view[item] = qty
	}

	for participant, staged := range snap.Pending {
		if _, voted := snap.Confirmed[participant]; voted {
			continue
		}
		for item, qty := range staged {
			view[item] += qty
		}
	}

	return view
}

// BuildSummary derives the consolidated order from confirmed state only.
// Items with zero total are omitted.
func BuildSummary(snap session.Snapshot) core.OrderSummary {
	summary := core.OrderSummary{
		Items:         make(map[string]int, len(snap.Totals)),
		ByParticipant: make(map[int64]core.ParticipantOrder, len(snap.Confirmed)),
	}

	for item, qty := range snap.Totals {
		if qty > 0 {
			summary.Items[item] = qty
		}
	}

	for participant, confirmed := range snap.Confirmed {
		name := snap.Names[participant]
		if name == "" {
			name = anonymousName(participant)
		}

		quantities := make(map[string]int, len(confirmed))
		for item, qty := range confirmed {
			quantities[item] = qty
		}

		summary.ByParticipant[participant] = core.ParticipantOrder{
			Name:       name,
			Quantities: quantities,
		}
	}

	return summary
}

// Views serves read-only session views. It implements core.OrderReader.
type Views struct {
	sessions *session.Service
}

func NewViews(sessions *session.Service) *Views {
	return &Views{sessions: sessions}
}

func (v *Views) CombinedView(sessionID string) (map[string]int, error) {
	snap, err := v.sessions.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	return BuildCombinedView(snap), nil
}

func (v *Views) OrderSummary(sessionID string) (core.OrderSummary, error) {
	snap, err := v.sessions.Snapshot(sessionID)
	if err != nil {
		return core.OrderSummary{}, err
	}
	return BuildSummary(snap), nil
}

func (v *Views) Sessions() []core.SessionInfo {
	snaps := v.sessions.Snapshots()

	infos := make([]core.SessionInfo, 0, len(snaps))
	for _, snap := range snaps {
		infos = append(infos, core.SessionInfo{
			ID:     snap.ID,
			Status: string(snap.Status),
			Items:  snap.Items,
		})
	}
	return infos
}
