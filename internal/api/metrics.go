package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "siterank_analyses_total",
		Help: "Analyses processed, by weighting method and outcome.",
	}, []string{"method", "outcome"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "siterank_analysis_duration_seconds",
		Help:    "Wall-clock duration of analysis requests.",
		Buckets: prometheus.DefBuckets,
	})
)
