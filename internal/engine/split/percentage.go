package split

import "math"

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Divides the expense based on specified percentages for each participant
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage-based splits
type PercentageStrategy struct{}

// Kind returns the split kind identifier
func (s *PercentageStrategy) Kind() Kind {
	return KindPercentage
}

// Validate checks if the inputs are valid for a percentage split
func (s *PercentageStrategy) Validate(totalAmount float64, shares []ShareInput) error {
	if len(shares) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}

	// Check that all shares carry percentages and that they sum to 100
	var totalPercentage float64
	for _, share := range shares {
		if share.ParticipantID == "" {
			return ErrMissingParticipantID
		}
		if share.Percentage == nil {
			return ErrMissingPercentage
		}
		if *share.Percentage < 0 || *share.Percentage > 100 {
			return ErrPercentageOutOfRange
		}
		totalPercentage += *share.Percentage
	}

	if math.Abs(totalPercentage-100) > Epsilon {
		return ErrPercentageSumInvalid
	}

	return nil
}

// Calculate derives each non-payer obligation as percentage/100 * total.
// The last borrower absorbs any rounding residue so the emitted amounts sum
// to the borrowers' combined percentage of the total.
func (s *PercentageStrategy) Calculate(totalAmount float64, payerID string, shares []ShareInput) ([]Obligation, error) {
	if err := s.Validate(totalAmount, shares); err != nil {
		return nil, err
	}

	borrowers := nonPayerShares(payerID, shares)

	if len(borrowers) == 0 {
		return []Obligation{}, nil
	}

	obligations := make([]Obligation, len(borrowers))
	var emitted float64
	var borrowerPercentage float64

	for i, share := range borrowers {
		amount := roundToTwoDecimals(totalAmount * (*share.Percentage) / 100)
		emitted += amount
		borrowerPercentage += *share.Percentage
		obligations[i] = Obligation{
			BorrowerID: share.ParticipantID,
			PayerID:    payerID,
			Amount:     amount,
		}
	}

	expected := roundToTwoDecimals(totalAmount * borrowerPercentage / 100)
	residue := roundToTwoDecimals(expected - emitted)
	if residue != 0 {
		last := &obligations[len(obligations)-1]
		last.Amount = roundToTwoDecimals(last.Amount + residue)
	}

	return obligations, nil
}
