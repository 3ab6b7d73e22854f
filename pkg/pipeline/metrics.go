package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeDone    = "done"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
)

var (
	passesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pundit_pipeline_passes_total",
		Help: "Pipeline passes by final status (completed or aborted).",
	}, []string{"status"})

	operatorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pundit_pipeline_operator_duration_seconds",
		Help:    "Wall time of each operator stage per pass.",
		Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
	}, []string{"operator"})

	itemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pundit_pipeline_items_total",
		Help: "Items handled by each operator, by outcome.",
	}, []string{"operator", "outcome"})
)

func countItem(operator, outcome string) {
	itemsTotal.WithLabelValues(operator, outcome).Inc()
}
