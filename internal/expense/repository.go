package expense

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles expense and share data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpenseWithShares inserts an expense and its derived shares in a
// single transaction so a partial write never leaves shares without their
// expense or vice versa.
func (r *Repository) CreateExpenseWithShares(ctx context.Context, e *Expense, shares []*Share) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (id, group_id, payer_id, description, amount, split_kind)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.ID, e.GroupID, e.PayerID, e.Description, e.Amount, e.SplitKind,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	shareQuery := `
		INSERT INTO expense_shares (expense_id, borrower_id, payer_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	for _, share := range shares {
		share.ExpenseID = e.ID
		if err := tx.QueryRowContext(ctx, shareQuery,
			share.ExpenseID, share.BorrowerID, share.PayerID, share.Amount,
		).Scan(&share.ID); err != nil {
			return fmt.Errorf("failed to create expense share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}
	return nil
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT id, group_id, payer_id, description, amount, split_kind, created_at
		FROM expenses
		WHERE id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.SplitKind,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSharesByExpenseID retrieves the shares derived from an expense
func (r *Repository) GetSharesByExpenseID(ctx context.Context, expenseID string) ([]*Share, error) {
	query := `
		SELECT id, expense_id, borrower_id, payer_id, amount
		FROM expense_shares
		WHERE expense_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	var shares []*Share
	for rows.Next() {
		share := &Share{}
		if err := rows.Scan(&share.ID, &share.ExpenseID, &share.BorrowerID, &share.PayerID, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares = append(shares, share)
	}

	return shares, rows.Err()
}

// ListExpensesByGroupID retrieves expenses for a group, newest first
func (r *Repository) ListExpensesByGroupID(ctx context.Context, groupID string, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT id, group_id, payer_id, description, amount, split_kind, created_at
		FROM expenses
		WHERE group_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.SplitKind,
			&expense.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, rows.Err()
}

// DeleteExpense removes an expense; its shares cascade
func (r *Repository) DeleteExpense(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
