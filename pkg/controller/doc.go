// Package controller builds the operational HTTP handler served next to the
// background workers: Prometheus metrics, a health check backed by the
// database, and optional net/http/pprof profiling, all behind an access log
// middleware.
package controller
