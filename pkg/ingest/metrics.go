package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pundit_ingest_posts_total",
			Help: "New raw posts saved, by platform.",
		},
		[]string{"platform"},
	)

	sourcePolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pundit_ingest_source_polls_total",
			Help: "Poll attempts against monitored sources, by outcome.",
		},
		[]string{"outcome"},
	)
)
