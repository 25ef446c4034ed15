package settlement

import (
	"context"
	"sort"

	"github.com/amehta/splitledger/internal/engine"
	"github.com/amehta/splitledger/pkg/metrics"
)

// Service handles settlement business logic
type Service struct {
	engine *engine.Engine
	repo   *Repository
}

// NewService creates a new settlement service
func NewService(eng *engine.Engine, repo *Repository) *Service {
	return &Service{engine: eng, repo: repo}
}

// Recompute replaces the group's stored settlement set from its current
// obligations and returns the stored rows
func (s *Service) Recompute(ctx context.Context, groupID string) ([]*Settlement, error) {
	computed, err := s.engine.Recompute(ctx, groupID)
	if err != nil {
		metrics.Recomputations.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.Recomputations.WithLabelValues("ok").Inc()
	metrics.SettlementsEmitted.Add(float64(len(computed)))

	return s.repo.ListByGroupID(ctx, groupID)
}

// ListByGroupID returns the stored settlement set for a group
func (s *Service) ListByGroupID(ctx context.Context, groupID string) ([]*Settlement, error) {
	return s.repo.ListByGroupID(ctx, groupID)
}

// NetBalances returns the group's current per-participant net positions,
// ordered by participant id for stable output
func (s *Service) NetBalances(ctx context.Context, groupID string) ([]*NetBalanceResponse, error) {
	balances, err := s.engine.Balances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]*NetBalanceResponse, 0, len(balances))
	for id, amount := range balances {
		responses = append(responses, &NetBalanceResponse{
			ParticipantID: id,
			Amount:        amount,
		})
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].ParticipantID < responses[j].ParticipantID
	})

	return responses, nil
}
