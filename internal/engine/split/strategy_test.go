package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	tests := []struct {
		kind     string
		wantKind Kind
		wantErr  bool
	}{
		{kind: "EQUAL", wantKind: KindEqual},
		{kind: "UNEQUAL", wantKind: KindUnequal},
		{kind: "PERCENTAGE", wantKind: KindPercentage},
		{kind: "HALFSIES", wantErr: true},
		{kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			strategy, err := factory.CreateFromString(tt.kind)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, strategy.Kind())
		})
	}
}

func TestEqualStrategy(t *testing.T) {
	s := &EqualStrategy{}

	t.Run("three participants including payer", func(t *testing.T) {
		shares := []ShareInput{
			{ParticipantID: "alice"},
			{ParticipantID: "bob"},
			{ParticipantID: "carol"},
		}

		obligations, err := s.Calculate(300, "alice", shares)
		require.NoError(t, err)
		require.Len(t, obligations, 2)

		for _, o := range obligations {
			assert.Equal(t, "alice", o.PayerID)
			assert.NotEqual(t, o.PayerID, o.BorrowerID)
			assert.InDelta(t, 100, o.Amount, Epsilon)
		}
	})

	t.Run("emitted amounts cover borrower portion despite rounding", func(t *testing.T) {
		shares := []ShareInput{
			{ParticipantID: "alice"},
			{ParticipantID: "bob"},
			{ParticipantID: "carol"},
		}

		// 100/3 is not representable; the residue lands on one borrower
		obligations, err := s.Calculate(100, "alice", shares)
		require.NoError(t, err)
		require.Len(t, obligations, 2)

		var sum float64
		for _, o := range obligations {
			sum += o.Amount
		}
		assert.InDelta(t, 100.0*2/3, sum, Epsilon)
	})

	t.Run("payer not listed owes nothing, all shares owe", func(t *testing.T) {
		shares := []ShareInput{
			{ParticipantID: "bob"},
			{ParticipantID: "carol"},
		}

		obligations, err := s.Calculate(100, "alice", shares)
		require.NoError(t, err)
		require.Len(t, obligations, 2)

		var sum float64
		for _, o := range obligations {
			assert.InDelta(t, 50, o.Amount, Epsilon)
			sum += o.Amount
		}
		assert.InDelta(t, 100, sum, Epsilon)
	})

	t.Run("payer is the only participant", func(t *testing.T) {
		obligations, err := s.Calculate(80, "alice", []ShareInput{{ParticipantID: "alice"}})
		require.NoError(t, err)
		assert.Empty(t, obligations)
	})

	t.Run("empty participant list", func(t *testing.T) {
		_, err := s.Calculate(80, "alice", nil)
		assert.ErrorIs(t, err, ErrNoParticipants)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := s.Calculate(-10, "alice", []ShareInput{{ParticipantID: "bob"}})
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})
}

func TestUnequalStrategy(t *testing.T) {
	s := &UnequalStrategy{}

	tests := []struct {
		name    string
		total   float64
		payer   string
		shares  []ShareInput
		wantErr error
		wantLen int
	}{
		{
			name:  "amounts sum to total",
			total: 100,
			payer: "alice",
			shares: []ShareInput{
				{ParticipantID: "bob", Amount: f(60)},
				{ParticipantID: "carol", Amount: f(40)},
			},
			wantLen: 2,
		},
		{
			name:  "sum mismatch rejected",
			total: 100,
			payer: "alice",
			shares: []ShareInput{
				{ParticipantID: "bob", Amount: f(60)},
				{ParticipantID: "carol", Amount: f(50)},
			},
			wantErr: ErrAmountSumMismatch,
		},
		{
			name:  "representable drift within epsilon accepted",
			total: 0.3,
			payer: "alice",
			shares: []ShareInput{
				{ParticipantID: "bob", Amount: f(0.1)},
				{ParticipantID: "carol", Amount: f(0.2)},
			},
			wantLen: 2,
		},
		{
			name:  "missing amount rejected",
			total: 100,
			payer: "alice",
			shares: []ShareInput{
				{ParticipantID: "bob", Amount: f(100)},
				{ParticipantID: "carol"},
			},
			wantErr: ErrMissingAmount,
		},
		{
			name:  "missing participant id rejected",
			total: 100,
			payer: "alice",
			shares: []ShareInput{
				{Amount: f(100)},
			},
			wantErr: ErrMissingParticipantID,
		},
		{
			name:    "empty shares rejected",
			total:   100,
			payer:   "alice",
			wantErr: ErrNoParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obligations, err := s.Calculate(tt.total, tt.payer, tt.shares)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsInvalidSplit(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, obligations, tt.wantLen)
		})
	}
}

func TestUnequalStrategyPayerShareExcluded(t *testing.T) {
	s := &UnequalStrategy{}

	shares := []ShareInput{
		{ParticipantID: "alice", Amount: f(30)},
		{ParticipantID: "bob", Amount: f(70)},
	}

	obligations, err := s.Calculate(100, "alice", shares)
	require.NoError(t, err)
	require.Len(t, obligations, 1)
	assert.Equal(t, "bob", obligations[0].BorrowerID)
	assert.Equal(t, "alice", obligations[0].PayerID)
	assert.InDelta(t, 70, obligations[0].Amount, Epsilon)
}

func TestPercentageStrategy(t *testing.T) {
	s := &PercentageStrategy{}

	tests := []struct {
		name    string
		shares  []ShareInput
		wantErr error
	}{
		{
			name: "sums to exactly 100",
			shares: []ShareInput{
				{ParticipantID: "bob", Percentage: f(60)},
				{ParticipantID: "carol", Percentage: f(40)},
			},
		},
		{
			name: "sums to 99 rejected",
			shares: []ShareInput{
				{ParticipantID: "bob", Percentage: f(60)},
				{ParticipantID: "carol", Percentage: f(39)},
			},
			wantErr: ErrPercentageSumInvalid,
		},
		{
			name: "sums to 101 rejected",
			shares: []ShareInput{
				{ParticipantID: "bob", Percentage: f(60)},
				{ParticipantID: "carol", Percentage: f(41)},
			},
			wantErr: ErrPercentageSumInvalid,
		},
		{
			name: "percentage above 100 rejected",
			shares: []ShareInput{
				{ParticipantID: "bob", Percentage: f(150)},
				{ParticipantID: "carol", Percentage: f(-50)},
			},
			wantErr: ErrPercentageOutOfRange,
		},
		{
			name: "missing percentage rejected",
			shares: []ShareInput{
				{ParticipantID: "bob", Percentage: f(100)},
				{ParticipantID: "carol"},
			},
			wantErr: ErrMissingPercentage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Calculate(200, "alice", tt.shares)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPercentageStrategyAmounts(t *testing.T) {
	s := &PercentageStrategy{}

	shares := []ShareInput{
		{ParticipantID: "alice", Percentage: f(50)},
		{ParticipantID: "bob", Percentage: f(30)},
		{ParticipantID: "carol", Percentage: f(20)},
	}

	obligations, err := s.Calculate(200, "alice", shares)
	require.NoError(t, err)
	require.Len(t, obligations, 2)

	amounts := map[string]float64{}
	for _, o := range obligations {
		amounts[o.BorrowerID] = o.Amount
	}
	assert.InDelta(t, 60, amounts["bob"], Epsilon)
	assert.InDelta(t, 40, amounts["carol"], Epsilon)
}

func TestPercentageStrategyRoundingResidue(t *testing.T) {
	s := &PercentageStrategy{}

	// Three equal thirds of 100: each rounds to 33.33, leaving 0.01 of the
	// borrowers' 66.67 share unassigned; the last borrower absorbs it.
	shares := []ShareInput{
		{ParticipantID: "alice", Percentage: f(33.34)},
		{ParticipantID: "bob", Percentage: f(33.33)},
		{ParticipantID: "carol", Percentage: f(33.33)},
	}

	obligations, err := s.Calculate(100, "alice", shares)
	require.NoError(t, err)
	require.Len(t, obligations, 2)

	var sum float64
	for _, o := range obligations {
		sum += o.Amount
	}
	assert.InDelta(t, 66.66, sum, 0.001)
}
