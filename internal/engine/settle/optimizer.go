// Package settle turns per-participant net balances into a minimized set of
// point-to-point payments using greedy largest-debtor/largest-creditor
// matching. For N participants with non-zero balance it emits at most N-1
// transactions; finding the true global minimum is NP-hard and out of scope.
package settle

import (
	"container/heap"
	"math"
	"sort"

	"github.com/amehta/splitledger/internal/engine/balance"
)

// Settlement is a single directed payment that discharges part or all of a
// net balance. Amount is positive and rounded to two decimal places.
type Settlement struct {
	GroupID    string  `json:"group_id"`
	DebtorID   string  `json:"debtor_id"`
	CreditorID string  `json:"creditor_id"`
	Amount     float64 `json:"amount"`
}

// Optimize matches the largest outstanding debtor against the largest
// outstanding creditor until every balance is discharged. The sum-to-zero
// invariant over a closed group guarantees both sides drain together, modulo
// epsilon residue.
//
// Missing groupID or empty balances is a no-op, not an error. Amounts are
// rounded at emission time only; remainders pushed back into the heaps stay
// unrounded so rounding error does not compound across iterations.
func Optimize(groupID string, balances map[string]float64) []Settlement {
	if groupID == "" || len(balances) == 0 {
		return []Settlement{}
	}

	var creditorParties, debtorParties []party
	for id, b := range balances {
		switch {
		case b > balance.Epsilon:
			creditorParties = append(creditorParties, party{id: id, amount: b})
		case b < -balance.Epsilon:
			debtorParties = append(debtorParties, party{id: id, amount: -b})
		}
	}
	// Stable starting order independent of map iteration
	sort.Slice(creditorParties, func(i, j int) bool { return creditorParties[i].id < creditorParties[j].id })
	sort.Slice(debtorParties, func(i, j int) bool { return debtorParties[i].id < debtorParties[j].id })

	creditors := newPartyHeap(creditorParties)
	debtors := newPartyHeap(debtorParties)

	settlements := []Settlement{}
	for creditors.Len() > 0 && debtors.Len() > 0 {
		creditor := heap.Pop(creditors).(party)
		debtor := heap.Pop(debtors).(party)

		settled := math.Min(creditor.amount, debtor.amount)
		if settled > 0 && debtor.id != creditor.id {
			settlements = append(settlements, Settlement{
				GroupID:    groupID,
				DebtorID:   debtor.id,
				CreditorID: creditor.id,
				Amount:     math.Round(settled*100) / 100,
			})
		}

		if remainder := creditor.amount - settled; remainder > balance.Epsilon {
			heap.Push(creditors, party{id: creditor.id, amount: remainder})
		}
		if remainder := debtor.amount - settled; remainder > balance.Epsilon {
			heap.Push(debtors, party{id: debtor.id, amount: remainder})
		}
	}

	return settlements
}
