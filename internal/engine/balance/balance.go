// Package balance reduces pairwise obligations to per-participant net
// positions. Positive means the participant is owed money, negative means
// they owe money.
package balance

import (
	"log/slog"
	"math"

	"github.com/amehta/splitledger/internal/engine/split"
)

// Epsilon below which a net position is considered settled. Shared with the
// split validators so the whole engine tolerates the same drift.
const Epsilon = split.Epsilon

// Calculate aggregates obligations into one signed balance per participant:
// the payer of each obligation is credited, the borrower debited.
//
// Malformed obligations (missing ids, self-referencing pair, non-positive or
// non-finite amount) are skipped and logged rather than aborting the whole
// computation, so one bad record does not block settlement for a group.
// Callers needing strictness should pre-validate.
//
// Participants whose net position lands within Epsilon of zero are dropped
// from the result; they are settled and would only produce noise
// transactions from floating-point residue.
func Calculate(obligations []split.Obligation) map[string]float64 {
	balances := make(map[string]float64)

	var skipped int
	for _, o := range obligations {
		if !valid(o) {
			skipped++
			slog.Warn("skipping malformed obligation",
				"payer_id", o.PayerID,
				"borrower_id", o.BorrowerID,
				"amount", o.Amount,
			)
			continue
		}
		balances[o.PayerID] += o.Amount
		balances[o.BorrowerID] -= o.Amount
	}
	if skipped > 0 {
		slog.Warn("malformed obligations excluded from balances", "count", skipped)
	}

	for id, b := range balances {
		if math.Abs(b) < Epsilon {
			delete(balances, id)
		}
	}

	return balances
}

func valid(o split.Obligation) bool {
	if o.PayerID == "" || o.BorrowerID == "" || o.PayerID == o.BorrowerID {
		return false
	}
	if o.Amount <= 0 || math.IsNaN(o.Amount) || math.IsInf(o.Amount, 0) {
		return false
	}
	return true
}
