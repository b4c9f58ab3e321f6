package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefineRequestsTotal counts refine attempts by provider, model, and outcome.
	RefineRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptforge_refine_requests_total",
		Help: "Total prompt refinement attempts.",
	}, []string{"provider", "model", "outcome"})

	// RefineDuration tracks inference latency per provider and model.
	RefineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "promptforge_refine_duration_seconds",
		Help:    "Time spent on a single refinement call.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"provider", "model"})

	// PromptChars tracks the distribution of submitted prompt lengths.
	PromptChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "promptforge_prompt_chars",
		Help:    "Number of characters in submitted prompts.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
)
