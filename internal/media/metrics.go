package media

import (
	"travel/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK          = "ok"
	resultUndecodable = "undecodable"
	resultError       = "error"
)

type collectors struct {
	derivations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func newCollectors(reg prometheus.Registerer) *collectors {
	factory := promauto.With(reg)

	return &collectors{
		derivations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travel",
			Subsystem: "thumbnail",
			Name:      "derivations_total",
			Help:      "Number of thumbnail derivations by record kind and result.",
		}, []string{"kind", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "travel",
			Subsystem: "thumbnail",
			Name:      "derivation_duration_seconds",
			Help:      "Time spent deriving and storing a thumbnail.",
			Buckets:   metrics.DefaultBuckets,
		}, []string{"kind"}),
	}
}
