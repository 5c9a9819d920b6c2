package session

// Snapshot is a deep copy of a session's observable state, taken under the
// session lock. View builders work on snapshots so concurrent mutation can
// never tear a read.
type Snapshot struct {
	ID                string
	Items             []string
	Status            Status
	ChatID            int64
	MenuMessageID     int
	KeyboardMessageID int
	Pending           map[int64]map[string]int
	Confirmed         map[int64]map[string]int
	Totals            map[string]int
	Names             map[int64]string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		ID:                s.ID,
		Items:             append([]string(nil), s.Items...),
		Status:            s.status,
		ChatID:            s.ChatID,
		MenuMessageID:     s.menuMessageID,
		KeyboardMessageID: s.keyboardMessageID,
		Pending:           copyNested(s.pending),
		Confirmed:         copyNested(s.confirmed),
		Totals:            copyCounts(s.totals),
		Names:             copyNames(s.names),
	}
}

func copyNested(src map[int64]map[string]int) map[int64]map[string]int {
	dst := make(map[int64]map[string]int, len(src))
	for participant, counts := range src {
		dst[participant] = copyCounts(counts)
	}
	return dst
}

func copyCounts(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for item, qty := range src {
		dst[item] = qty
	}
	return dst
}

func copyNames(src map[int64]string) map[int64]string {
	dst := make(map[int64]string, len(src))
	for participant, name := range src {
		dst[participant] = name
	}
	return dst
}
