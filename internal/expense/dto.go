package expense

import "github.com/amehta/splitledger/internal/engine/split"

// ShareRequest represents one participant's stake in a new expense
type ShareRequest struct {
	ParticipantID string   `json:"participant_id"`
	Percentage    *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount        *float64 `json:"amount,omitempty"`     // For UNEQUAL split
}

// ToShareInput converts to the split package's input type
func (s *ShareRequest) ToShareInput() split.ShareInput {
	return split.ShareInput{
		ParticipantID: s.ParticipantID,
		Percentage:    s.Percentage,
		Amount:        s.Amount,
	}
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID     string          `json:"group_id"`
	PayerID     string          `json:"payer_id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	SplitKind   string          `json:"split_kind"` // EQUAL, UNEQUAL, PERCENTAGE
	Shares      []*ShareRequest `json:"shares"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          string           `json:"id"`
	GroupID     string           `json:"group_id"`
	PayerID     string           `json:"payer_id"`
	Description string           `json:"description"`
	Amount      float64          `json:"amount"`
	SplitKind   string           `json:"split_kind"`
	CreatedAt   string           `json:"created_at"`
	Shares      []*ShareResponse `json:"shares,omitempty"`
}

// ShareResponse represents the response for a derived share
type ShareResponse struct {
	ID         int64   `json:"id"`
	ExpenseID  string  `json:"expense_id"`
	BorrowerID string  `json:"borrower_id"`
	PayerID    string  `json:"payer_id"`
	Amount     float64 `json:"amount"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		Description: e.Description,
		Amount:      e.Amount,
		SplitKind:   string(e.SplitKind),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Share model to a ShareResponse DTO
func (s *Share) ToResponse() *ShareResponse {
	return &ShareResponse{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		BorrowerID: s.BorrowerID,
		PayerID:    s.PayerID,
		Amount:     s.Amount,
	}
}

// ToResponse converts an ExpenseWithShares to its DTO form
func (e *ExpenseWithShares) ToResponse() *ExpenseResponse {
	resp := e.Expense.ToResponse()
	resp.Shares = make([]*ShareResponse, len(e.Shares))
	for i, share := range e.Shares {
		resp.Shares[i] = share.ToResponse()
	}
	return resp
}
