// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the analysis API. Registered once against the
// default registry; promhttp serves them on /metrics.
var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routelens",
		Name:      "analyses_total",
		Help:      "Route analyses performed, by outcome.",
	}, []string{"status"})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routelens",
		Name:      "analysis_duration_seconds",
		Help:      "Wall time of a single analyze request.",
		Buckets:   prometheus.DefBuckets,
	})

	dependenciesFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "routelens",
		Name:      "dependencies_per_route",
		Help:      "Dependencies surfaced per analyzed route.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
)
