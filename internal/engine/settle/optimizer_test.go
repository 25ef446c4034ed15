package settle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amehta/splitledger/internal/engine/balance"
	"github.com/amehta/splitledger/internal/engine/split"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name     string
		groupID  string
		balances map[string]float64
		want     []Settlement
	}{
		{
			name:     "empty balances is a no-op",
			groupID:  "trip",
			balances: map[string]float64{},
			want:     []Settlement{},
		},
		{
			name:     "missing group id is a no-op",
			groupID:  "",
			balances: map[string]float64{"alice": 10, "bob": -10},
			want:     []Settlement{},
		},
		{
			name:    "one creditor two equal debtors",
			groupID: "trip",
			balances: map[string]float64{
				"alice": 200,
				"bob":   -100,
				"carol": -100,
			},
			// bob before carol on the equal-magnitude tie
			want: []Settlement{
				{GroupID: "trip", DebtorID: "bob", CreditorID: "alice", Amount: 100},
				{GroupID: "trip", DebtorID: "carol", CreditorID: "alice", Amount: 100},
			},
		},
		{
			name:    "chain collapses past the settled middleman",
			groupID: "trip",
			balances: map[string]float64{
				"alice": -50,
				"carol": 50,
			},
			want: []Settlement{
				{GroupID: "trip", DebtorID: "alice", CreditorID: "carol", Amount: 50},
			},
		},
		{
			name:    "partial match pushes back the remainder",
			groupID: "trip",
			balances: map[string]float64{
				"alice": 120,
				"bob":   -70,
				"carol": -50,
			},
			want: []Settlement{
				{GroupID: "trip", DebtorID: "bob", CreditorID: "alice", Amount: 70},
				{GroupID: "trip", DebtorID: "carol", CreditorID: "alice", Amount: 50},
			},
		},
		{
			name:    "residue below epsilon is treated as settled",
			groupID: "trip",
			balances: map[string]float64{
				"alice": 100.004,
				"bob":   -100,
			},
			want: []Settlement{
				{GroupID: "trip", DebtorID: "bob", CreditorID: "alice", Amount: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(tt.groupID, tt.balances)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.GroupID, got[i].GroupID)
				assert.Equal(t, want.DebtorID, got[i].DebtorID)
				assert.Equal(t, want.CreditorID, got[i].CreditorID)
				assert.InDelta(t, want.Amount, got[i].Amount, balance.Epsilon)
			}
		})
	}
}

func TestOptimizeDeterministicTieBreak(t *testing.T) {
	balances := map[string]float64{
		"dave":  -30,
		"bob":   -30,
		"alice": 30,
		"carol": 30,
	}

	first := Optimize("g", balances)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Optimize("g", balances))
	}
}

func TestOptimizeNeverSelfSettles(t *testing.T) {
	balances := map[string]float64{
		"alice": 75.5,
		"bob":   -20,
		"carol": -25.5,
		"dave":  -30,
	}

	for _, s := range Optimize("g", balances) {
		assert.NotEqual(t, s.DebtorID, s.CreditorID)
		assert.Greater(t, s.Amount, 0.0)
	}
}

func TestOptimizeTransactionBound(t *testing.T) {
	// N participants with non-zero balances settle in at most N-1 payments
	balances := map[string]float64{}
	var total float64
	for i := 0; i < 9; i++ {
		amount := float64(10 * (i + 1))
		balances[fmt.Sprintf("debtor-%d", i)] = -amount
		total += amount
	}
	balances["creditor"] = total

	settlements := Optimize("g", balances)
	assert.LessOrEqual(t, len(settlements), len(balances)-1)
}

func TestOptimizeRoundTrip(t *testing.T) {
	// Replaying the emitted settlements as obligations must zero out every
	// participant's balance
	balances := map[string]float64{
		"alice": 133.34,
		"bob":   -66.67,
		"carol": -66.67,
		"dave":  90,
		"erin":  -90,
	}

	settlements := Optimize("g", balances)
	require.NotEmpty(t, settlements)

	replayed := make([]split.Obligation, len(settlements))
	for i, s := range settlements {
		replayed[i] = split.Obligation{
			BorrowerID: s.DebtorID,
			PayerID:    s.CreditorID,
			Amount:     s.Amount,
		}
	}

	// The settlement flow per participant must equal their net position, so
	// applying the payments leaves everyone at ~0.
	residual := balance.Calculate(replayed)
	for id, b := range balances {
		assert.InDelta(t, 0, b-residual[id], balance.Epsilon)
	}
}
