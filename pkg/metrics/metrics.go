// Package metrics holds Prometheus settings shared by the collectors of the
// application.
package metrics

// DefaultBuckets are latency buckets in seconds. They reach further than the
// Prometheus defaults since decoding and resizing a large upload can take
// several seconds.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals
