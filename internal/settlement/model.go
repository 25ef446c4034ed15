package settlement

import "time"

// Settlement is one stored row of a group's computed settlement set: a
// directed payment from debtor to creditor. The set for a group is replaced
// wholesale on every recomputation, never patched.
type Settlement struct {
	ID         int64     `json:"id"`
	GroupID    string    `json:"group_id"`
	DebtorID   string    `json:"debtor_id"`
	CreditorID string    `json:"creditor_id"`
	Amount     float64   `json:"amount"`
	ComputedAt time.Time `json:"computed_at"`
}
