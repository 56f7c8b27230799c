package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "huffman"
	subsystem = "codec"
)

var (
	Encodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "encodes_total",
			Help:      "Total number of encode requests by result",
		},
		[]string{"result"},
	)

	Decodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decodes_total",
			Help:      "Total number of decode requests by result",
		},
		[]string{"result"},
	)

	// bits per input symbol, 8 would mean no gain over a byte per symbol
	BitsPerSymbol = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bits_per_symbol",
			Help:      "Average code length of encoded inputs",
			Buckets:   []float64{0.5, 1, 1.5, 2, 3, 4, 5, 6, 8, 12, 16},
		},
	)

	AlphabetSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "alphabet_size",
			Help:      "Distinct symbols per encoded input",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)
