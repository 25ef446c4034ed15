package expense

import (
	"time"

	"github.com/amehta/splitledger/internal/engine/split"
)

// Expense represents a shared expense in the system
type Expense struct {
	ID          string     `json:"id"`
	GroupID     string     `json:"group_id"`
	PayerID     string     `json:"payer_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	SplitKind   split.Kind `json:"split_kind"` // EQUAL, UNEQUAL, PERCENTAGE
	CreatedAt   time.Time  `json:"created_at"`
}

// Share is one persisted obligation derived from an expense: the borrower
// owes the expense's payer the given amount
type Share struct {
	ID         int64   `json:"id"`
	ExpenseID  string  `json:"expense_id"`
	BorrowerID string  `json:"borrower_id"`
	PayerID    string  `json:"payer_id"`
	Amount     float64 `json:"amount"`
}

// ExpenseWithShares combines an expense with its derived shares
type ExpenseWithShares struct {
	Expense *Expense
	Shares  []*Share
}
