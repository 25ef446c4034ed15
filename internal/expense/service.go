package expense

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amehta/splitledger/internal/engine/settle"
	"github.com/amehta/splitledger/internal/engine/split"
	"github.com/amehta/splitledger/pkg/metrics"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrMissingGroupID  = errors.New("group id is required")
	ErrMissingPayerID  = errors.New("payer id is required")
)

// Recomputer triggers settlement recomputation for a group after its
// obligations change. Satisfied by engine.Engine.
type Recomputer interface {
	Recompute(ctx context.Context, groupID string) ([]settle.Settlement, error)
}

// Service handles expense business logic
type Service struct {
	repo         *Repository
	splitFactory *split.Factory
	recomputer   Recomputer
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, splitFactory *split.Factory, recomputer Recomputer) *Service {
	return &Service{
		repo:         repo,
		splitFactory: splitFactory,
		recomputer:   recomputer,
	}
}

// CreateExpense derives obligations from the request using the selected split
// strategy, persists the expense with its shares, and recomputes the group's
// settlement set.
func (s *Service) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*ExpenseWithShares, error) {
	if req.GroupID == "" {
		return nil, ErrMissingGroupID
	}
	if req.PayerID == "" {
		return nil, ErrMissingPayerID
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitKind)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.ShareInput, len(req.Shares))
	for i, share := range req.Shares {
		inputs[i] = share.ToShareInput()
	}

	obligations, err := strategy.Calculate(req.Amount, req.PayerID, inputs)
	if err != nil {
		return nil, err
	}

	expense := &Expense{
		ID:          uuid.New().String(),
		GroupID:     req.GroupID,
		PayerID:     req.PayerID,
		Description: req.Description,
		Amount:      req.Amount,
		SplitKind:   strategy.Kind(),
	}

	shares := make([]*Share, len(obligations))
	for i, o := range obligations {
		shares[i] = &Share{
			BorrowerID: o.BorrowerID,
			PayerID:    o.PayerID,
			Amount:     o.Amount,
		}
	}

	if err := s.repo.CreateExpenseWithShares(ctx, expense, shares); err != nil {
		return nil, err
	}

	metrics.ExpensesCreated.WithLabelValues(string(strategy.Kind())).Inc()

	// Stored settlements must track the obligations they were derived from
	if _, err := s.recomputer.Recompute(ctx, req.GroupID); err != nil {
		return nil, err
	}

	slog.Info("expense created",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"split_kind", expense.SplitKind,
		"shares", len(shares),
	)

	return &ExpenseWithShares{Expense: expense, Shares: shares}, nil
}

// GetExpenseByID retrieves an expense with its shares
func (s *Service) GetExpenseByID(ctx context.Context, id string) (*ExpenseWithShares, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	shares, err := s.repo.GetSharesByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithShares{Expense: expense, Shares: shares}, nil
}

// ListExpensesByGroupID retrieves expenses for a group
func (s *Service) ListExpensesByGroupID(ctx context.Context, groupID string, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpensesByGroupID(ctx, groupID, perPage, offset)
}

// DeleteExpense removes an expense and recomputes the group's settlements
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return err
	}

	if _, err := s.recomputer.Recompute(ctx, expense.GroupID); err != nil {
		return err
	}

	slog.Info("expense deleted", "expense_id", id, "group_id", expense.GroupID)
	return nil
}
