package settlement

// SettlementResponse represents the response for one stored settlement
type SettlementResponse struct {
	ID         int64   `json:"id"`
	GroupID    string  `json:"group_id"`
	DebtorID   string  `json:"debtor_id"`
	CreditorID string  `json:"creditor_id"`
	Amount     float64 `json:"amount"`
	ComputedAt string  `json:"computed_at"`
}

// NetBalanceResponse represents one participant's net position in a group.
// Positive = is owed money, negative = owes money.
type NetBalanceResponse struct {
	ParticipantID string  `json:"participant_id"`
	Amount        float64 `json:"amount"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:         s.ID,
		GroupID:    s.GroupID,
		DebtorID:   s.DebtorID,
		CreditorID: s.CreditorID,
		Amount:     s.Amount,
		ComputedAt: s.ComputedAt.Format("2006-01-02T15:04:05Z"),
	}
}
