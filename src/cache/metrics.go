// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cache

import (
	"errors"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheLookups counts lookups by result
	// Labels: result (hit, miss)
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certinfo_cache_lookups_total",
			Help: "Total number of certificate cache lookups grouped by result",
		},
		[]string{"result"},
	)

	// fetchOutcomes counts underlying fetches by outcome
	// Labels: outcome (success, network, timeout, malformed, other)
	fetchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "certinfo_fetch_total",
			Help: "Total number of certificate fetches grouped by outcome",
		},
		[]string{"outcome"},
	)

	// fetchDuration tracks connect+handshake latency
	// Buckets: 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s
	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "certinfo_fetch_duration_seconds",
			Help:    "Duration of certificate fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// cacheEntries tracks the number of cached hostnames
	cacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "certinfo_cache_entries",
			Help: "Number of hostnames currently cached",
		},
	)
)

// outcomeLabel maps a fetch error to its metric label.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, certinfo.ErrTimeout):
		return "timeout"
	case errors.Is(err, certinfo.ErrNetwork):
		return "network"
	case errors.Is(err, certinfo.ErrMalformedCertificate):
		return "malformed"
	default:
		return "other"
	}
}
