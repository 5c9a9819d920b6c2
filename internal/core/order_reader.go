package core

// OrderSummary is the consolidated order derived strictly from confirmed
// votes. Participants who only staged selections are excluded.
type OrderSummary struct {
	Items         map[string]int             `json:"items"`
	ByParticipant map[int64]ParticipantOrder `json:"by_participant"`
}

// ParticipantOrder is one voter's confirmed portion of the order.
type ParticipantOrder struct {
	Name       string         `json:"name"`
	Quantities map[string]int `json:"quantities"`
}

// SessionInfo is the listing row for one session.
type SessionInfo struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Items  []string `json:"items"`
}

// OrderReader is the read-side contract consumed by the HTTP API and the
// transport. Implementations must serve consistent snapshots.
type OrderReader interface {
	CombinedView(sessionID string) (map[string]int, error)
	OrderSummary(sessionID string) (OrderSummary, error)
	Sessions() []SessionInfo
}
