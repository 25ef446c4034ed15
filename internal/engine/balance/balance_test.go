package balance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amehta/splitledger/internal/engine/split"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		obligations []split.Obligation
		want        map[string]float64
	}{
		{
			name:        "empty input yields empty map",
			obligations: nil,
			want:        map[string]float64{},
		},
		{
			name: "single expense split equally",
			obligations: []split.Obligation{
				{BorrowerID: "bob", PayerID: "alice", Amount: 100},
				{BorrowerID: "carol", PayerID: "alice", Amount: 100},
			},
			want: map[string]float64{"alice": 200, "bob": -100, "carol": -100},
		},
		{
			name: "mediated debts cancel through the middle participant",
			obligations: []split.Obligation{
				{BorrowerID: "alice", PayerID: "bob", Amount: 50},
				{BorrowerID: "bob", PayerID: "carol", Amount: 50},
			},
			want: map[string]float64{"alice": -50, "carol": 50},
		},
		{
			name: "offsetting obligations drop below epsilon",
			obligations: []split.Obligation{
				{BorrowerID: "bob", PayerID: "alice", Amount: 25},
				{BorrowerID: "alice", PayerID: "bob", Amount: 25},
			},
			want: map[string]float64{},
		},
		{
			name: "malformed obligations are skipped, not fatal",
			obligations: []split.Obligation{
				{BorrowerID: "bob", PayerID: "alice", Amount: 40},
				{BorrowerID: "", PayerID: "alice", Amount: 10},
				{BorrowerID: "bob", PayerID: "", Amount: 10},
				{BorrowerID: "bob", PayerID: "bob", Amount: 10},
				{BorrowerID: "bob", PayerID: "alice", Amount: -5},
				{BorrowerID: "bob", PayerID: "alice", Amount: 0},
				{BorrowerID: "bob", PayerID: "alice", Amount: math.NaN()},
			},
			want: map[string]float64{"alice": 40, "bob": -40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.obligations)
			require.Len(t, got, len(tt.want))
			for id, amount := range tt.want {
				assert.InDelta(t, amount, got[id], Epsilon, "participant %s", id)
			}
		})
	}
}

func TestCalculateSumsToZero(t *testing.T) {
	obligations := []split.Obligation{
		{BorrowerID: "bob", PayerID: "alice", Amount: 133.33},
		{BorrowerID: "carol", PayerID: "alice", Amount: 133.33},
		{BorrowerID: "alice", PayerID: "bob", Amount: 80},
		{BorrowerID: "carol", PayerID: "bob", Amount: 80},
		{BorrowerID: "alice", PayerID: "carol", Amount: 40},
		{BorrowerID: "bob", PayerID: "carol", Amount: 40},
	}

	balances := Calculate(obligations)

	var sum float64
	for _, b := range balances {
		sum += b
	}
	assert.InDelta(t, 0, sum, Epsilon)
}
