package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bet metrics
var (
	BetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsTotal,
			Help: HelpTextBetsTotal,
		},
		[]string{LabelGame, LabelResult},
	)

	BetAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetAmountTotal,
			Help: HelpTextBetAmountTotal,
		},
		[]string{LabelGame},
	)

	PayoutAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutAmountTotal,
			Help: HelpTextPayoutAmountTotal,
		},
		[]string{LabelGame},
	)
)

// Settlement metrics
var (
	SettlementRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettlementRetries,
			Help: HelpTextSettlementRetries,
		},
	)

	SettlementReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSettlementReplays,
			Help: HelpTextSettlementReplays,
		},
	)
)

// Collaborator fallback metrics
var (
	ScorerFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScorerFallbacks,
			Help: HelpTextScorerFallbacks,
		},
	)

	ReserveFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReserveFallbacks,
			Help: HelpTextReserveFallbacks,
		},
	)
)

// Money movement metrics
var (
	TransfersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTransfersTotal,
			Help: HelpTextTransfersTotal,
		},
	)

	PayoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayoutsTotal,
			Help: HelpTextPayoutsTotal,
		},
	)
)
