// Package metrics exposes Prometheus counters for the settlement engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recomputations counts settlement recomputation runs, labeled by outcome.
	Recomputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_recomputations_total",
		Help: "Settlement recomputation runs, by outcome.",
	}, []string{"outcome"})

	// SettlementsEmitted counts settlement transactions written to storage.
	SettlementsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_settlements_emitted_total",
		Help: "Settlement transactions produced by the optimizer.",
	})

	// ExpensesCreated counts expenses accepted, labeled by split kind.
	ExpensesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_expenses_created_total",
		Help: "Expenses created, by split kind.",
	}, []string{"split_kind"})
)
