// Package engine orchestrates the debt-settlement pipeline: obligations are
// fetched for a group, reduced to net balances, minimized to a settlement
// set, and the stored set for the group is atomically replaced.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amehta/splitledger/internal/engine/balance"
	"github.com/amehta/splitledger/internal/engine/settle"
	"github.com/amehta/splitledger/internal/engine/split"
)

// ObligationRepository is the persistence contract the engine depends on.
// The engine only ever reads obligations and writes settlements.
type ObligationRepository interface {
	// FetchObligations returns all unsettled pairwise obligations for a group.
	FetchObligations(ctx context.Context, groupID string) ([]split.Obligation, error)

	// ReplaceSettlements atomically deletes the stored settlement set for the
	// group and inserts the new one. Implementations must serialize
	// replacements per group; on failure the previous set remains intact.
	ReplaceSettlements(ctx context.Context, groupID string, settlements []settle.Settlement) error
}

// Engine computes and persists minimized settlement sets per group
type Engine struct {
	repo ObligationRepository
}

// New creates an engine backed by the given repository
func New(repo ObligationRepository) *Engine {
	return &Engine{repo: repo}
}

// Recompute runs the full read-compute-write sequence for one group and
// returns the settlement set it stored. Running it twice against unchanged
// obligations stores an identical set; storage is replaced, never appended.
// Repository failures propagate unchanged apart from wrapping; the engine
// performs no retries.
func (e *Engine) Recompute(ctx context.Context, groupID string) ([]settle.Settlement, error) {
	obligations, err := e.repo.FetchObligations(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("fetch obligations for group %s: %w", groupID, err)
	}

	settlements := settle.Optimize(groupID, balance.Calculate(obligations))

	if err := e.repo.ReplaceSettlements(ctx, groupID, settlements); err != nil {
		return nil, fmt.Errorf("replace settlements for group %s: %w", groupID, err)
	}

	slog.Info("settlements recomputed",
		"group_id", groupID,
		"obligations", len(obligations),
		"settlements", len(settlements),
	)

	return settlements, nil
}

// Balances computes the current net position per participant for a group
// without touching the stored settlement set.
func (e *Engine) Balances(ctx context.Context, groupID string) (map[string]float64, error) {
	obligations, err := e.repo.FetchObligations(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("fetch obligations for group %s: %w", groupID, err)
	}
	return balance.Calculate(obligations), nil
}
