package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecompositionsTotal tracks the total number of decompositions by outcome
	DecompositionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pca_decompositions_total",
			Help: "The total number of PCA decompositions",
		},
		[]string{"status"},
	)

	// DecompositionDuration tracks the duration of successful decompositions
	DecompositionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pca_decomposition_duration_seconds",
			Help:    "The duration of PCA decompositions in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15), // From 0.1ms to ~1.6s
		},
	)

	// ReconstructionsTotal tracks the total number of reconstructions
	ReconstructionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pca_reconstructions_total",
			Help: "The total number of rank-k reconstructions",
		},
	)

	// GroupsSkippedTotal tracks groups skipped because their data was degenerate
	GroupsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pca_groups_skipped_total",
			Help: "The total number of groups skipped due to invalid input",
		},
	)
)
