package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amehta/splitledger/internal/engine"
	"github.com/amehta/splitledger/internal/engine/settle"
	"github.com/amehta/splitledger/internal/engine/split"
)

// Ensure Repository satisfies the engine's persistence contract
var _ engine.ObligationRepository = (*Repository)(nil)

// Repository handles settlement persistence and supplies the engine with the
// obligations derived from a group's expense shares
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FetchObligations returns every obligation recorded for a group, in
// insertion order
func (r *Repository) FetchObligations(ctx context.Context, groupID string) ([]split.Obligation, error) {
	query := `
		SELECT s.borrower_id, s.payer_id, s.amount
		FROM expense_shares s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.group_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch obligations: %w", err)
	}
	defer rows.Close()

	var obligations []split.Obligation
	for rows.Next() {
		var o split.Obligation
		if err := rows.Scan(&o.BorrowerID, &o.PayerID, &o.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		obligations = append(obligations, o)
	}

	return obligations, rows.Err()
}

// ReplaceSettlements swaps the stored settlement set for a group in a single
// transaction. A transaction-scoped advisory lock keyed by the group id
// serializes concurrent replacements for the same group, so a reader never
// observes the window between delete and insert. On any failure the
// transaction rolls back and the previous set remains intact.
func (r *Repository) ReplaceSettlements(ctx context.Context, groupID string, settlements []settle.Settlement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, groupID); err != nil {
		return fmt.Errorf("failed to acquire group lock: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM settlements WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to clear settlements: %w", err)
	}

	query := `
		INSERT INTO settlements (group_id, debtor_id, creditor_id, amount)
		VALUES ($1, $2, $3, $4)
	`
	for _, s := range settlements {
		if _, err := tx.ExecContext(ctx, query, s.GroupID, s.DebtorID, s.CreditorID, s.Amount); err != nil {
			return fmt.Errorf("failed to insert settlement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlements: %w", err)
	}
	return nil
}

// ListByGroupID retrieves the stored settlement set for a group
func (r *Repository) ListByGroupID(ctx context.Context, groupID string) ([]*Settlement, error) {
	query := `
		SELECT id, group_id, debtor_id, creditor_id, amount, computed_at
		FROM settlements
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(&s.ID, &s.GroupID, &s.DebtorID, &s.CreditorID, &s.Amount, &s.ComputedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, rows.Err()
}
