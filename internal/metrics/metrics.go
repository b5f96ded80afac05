package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bikerent_lookups_total",
			Help: "Customer lookups by outcome",
		},
		[]string{"outcome"}, // ok | transport | malformed | api | structure | identity | unavailable | internal
	)

	SheetFetchSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bikerent_sheet_fetch_seconds",
			Help:    "Round-trip time of sheet fetches",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		LookupsTotal,
		SheetFetchSeconds,
	)
}
