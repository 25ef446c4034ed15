package split

import (
	"errors"
	"fmt"
	"math"
)

// Kind identifies the rule used to derive obligations from one expense
type Kind string

const (
	KindEqual      Kind = "EQUAL"
	KindUnequal    Kind = "UNEQUAL"
	KindPercentage Kind = "PERCENTAGE"
)

// Epsilon is the tolerance used for monetary sum comparisons everywhere in
// the engine. Computed share sums are never compared with == because equal
// splits of amounts like 100/3 cannot be represented exactly.
const Epsilon = 0.01

// ShareInput represents one participant's stake in an expense with optional values
type ShareInput struct {
	ParticipantID string   `json:"participant_id"`
	Percentage    *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount        *float64 `json:"amount,omitempty"`     // For UNEQUAL split
}

// Obligation is a single directed debt record: the borrower owes the payer
// the given amount. PayerID == BorrowerID is never produced.
type Obligation struct {
	BorrowerID string  `json:"borrower_id"`
	PayerID    string  `json:"payer_id"`
	Amount     float64 `json:"amount"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate derives the obligations owed to the payer, one per non-payer share
	Calculate(totalAmount float64, payerID string, shares []ShareInput) ([]Obligation, error)

	// Kind returns the identifier for this strategy
	Kind() Kind

	// Validate checks if the inputs are valid for this strategy
	Validate(totalAmount float64, shares []ShareInput) error
}

// Factory creates split strategies based on the requested kind
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation based on the kind
func (f *Factory) Create(kind Kind) (Strategy, error) {
	switch kind {
	case KindEqual:
		return &EqualStrategy{}, nil
	case KindUnequal:
		return &UnequalStrategy{}, nil
	case KindPercentage:
		return &PercentageStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// CreateFromString creates a strategy from a string kind (useful for API requests)
func (f *Factory) CreateFromString(kind string) (Strategy, error) {
	return f.Create(Kind(kind))
}

var (
	ErrUnknownKind          = errors.New("unknown split kind")
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrMissingParticipantID = errors.New("participant id required for all shares")
	ErrMissingAmount        = errors.New("amount required for all shares")
	ErrMissingPercentage    = errors.New("percentage required for all shares")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrAmountSumMismatch    = errors.New("share amounts must sum to the total amount")
	ErrPercentageSumInvalid = errors.New("percentages must sum to 100")
)

// IsInvalidSplit reports whether err is one of the validation errors raised
// by a strategy, as opposed to an infrastructure failure.
func IsInvalidSplit(err error) bool {
	for _, target := range []error{
		ErrUnknownKind,
		ErrNoParticipants,
		ErrNegativeAmount,
		ErrMissingParticipantID,
		ErrMissingAmount,
		ErrMissingPercentage,
		ErrPercentageOutOfRange,
		ErrAmountSumMismatch,
		ErrPercentageSumInvalid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// nonPayerShares removes the payer from the share list (they don't owe themselves)
func nonPayerShares(payerID string, shares []ShareInput) []ShareInput {
	filtered := make([]ShareInput, 0, len(shares))
	for _, s := range shares {
		if s.ParticipantID != payerID {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
