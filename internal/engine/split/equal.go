package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense equally among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Kind returns the split kind identifier
func (s *EqualStrategy) Kind() Kind {
	return KindEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(totalAmount float64, shares []ShareInput) error {
	if len(shares) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}
	for _, share := range shares {
		if share.ParticipantID == "" {
			return ErrMissingParticipantID
		}
	}
	return nil
}

// Calculate divides the total amount evenly among all participants.
// The payer is excluded from the emitted obligations (they already paid).
func (s *EqualStrategy) Calculate(totalAmount float64, payerID string, shares []ShareInput) ([]Obligation, error) {
	if err := s.Validate(totalAmount, shares); err != nil {
		return nil, err
	}

	borrowers := nonPayerShares(payerID, shares)

	if len(borrowers) == 0 {
		// Payer is the only participant, nothing is owed
		return []Obligation{}, nil
	}

	// Each participant's share includes the payer's own portion
	perHead := roundToTwoDecimals(totalAmount / float64(len(shares)))

	// The borrowers together owe the total minus the payer's own portion, if
	// the payer is listed. Rounding each head-count share can leave a cent or
	// two unaccounted; the first borrower absorbs the residue so the emitted
	// sum is exact.
	owedByBorrowers := totalAmount / float64(len(shares)) * float64(len(borrowers))
	residue := roundToTwoDecimals(owedByBorrowers - perHead*float64(len(borrowers)))

	obligations := make([]Obligation, len(borrowers))
	for i, share := range borrowers {
		amount := perHead
		if i == 0 && residue != 0 {
			amount = roundToTwoDecimals(amount + residue)
		}
		obligations[i] = Obligation{
			BorrowerID: share.ParticipantID,
			PayerID:    payerID,
			Amount:     amount,
		}
	}

	return obligations, nil
}
