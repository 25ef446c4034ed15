package split

import "math"

// =============================================================================
// UNEQUAL SPLIT STRATEGY
// Each participant owes a specific explicit amount (must sum to total)
// =============================================================================

// UnequalStrategy implements the Strategy interface for explicit-amount splits
type UnequalStrategy struct{}

// Kind returns the split kind identifier
func (s *UnequalStrategy) Kind() Kind {
	return KindUnequal
}

// Validate checks if the inputs are valid for an unequal split
func (s *UnequalStrategy) Validate(totalAmount float64, shares []ShareInput) error {
	if len(shares) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}

	// Check that all shares carry amounts and that they sum to the total
	var assigned float64
	for _, share := range shares {
		if share.ParticipantID == "" {
			return ErrMissingParticipantID
		}
		if share.Amount == nil {
			return ErrMissingAmount
		}
		if *share.Amount < 0 {
			return ErrNegativeAmount
		}
		assigned += *share.Amount
	}

	// Epsilon tolerance rather than strict equality, so representable
	// rounding of entered amounts does not reject a valid split
	if math.Abs(assigned-totalAmount) > Epsilon {
		return ErrAmountSumMismatch
	}

	return nil
}

// Calculate emits each non-payer share's explicit amount as an obligation
func (s *UnequalStrategy) Calculate(totalAmount float64, payerID string, shares []ShareInput) ([]Obligation, error) {
	if err := s.Validate(totalAmount, shares); err != nil {
		return nil, err
	}

	borrowers := nonPayerShares(payerID, shares)

	if len(borrowers) == 0 {
		return []Obligation{}, nil
	}

	obligations := make([]Obligation, len(borrowers))
	for i, share := range borrowers {
		obligations[i] = Obligation{
			BorrowerID: share.ParticipantID,
			PayerID:    payerID,
			Amount:     roundToTwoDecimals(*share.Amount),
		}
	}

	return obligations, nil
}
