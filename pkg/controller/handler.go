package controller

import (
	"context"
	"net/http"
	"time"
	"travel/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	healthPath   = "/healthz"
	pingTimeout  = 2 * time.Second
	healthyBody  = "ok\n"
	unhealthyMsg = "database unreachable\n"
)

// Pinger reports whether a dependency is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configure the operational handler.
type Options struct {
	// MetricsPath is where Prometheus metrics are served, e.g. "/metrics".
	MetricsPath string
	// Gatherer is the metrics source. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// DB is pinged by the health check. Nil makes the check always pass.
	DB Pinger
	// Pprof mounts net/http/pprof under /debug/pprof/.
	Pprof bool
}

// NewHandler returns the operational handler wrapped in WithLogger.
func NewHandler(opts Options) http.Handler {
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle(healthPath, healthHandler(opts.DB))
	if opts.Pprof {
		mountPprof(mux)
	}

	return WithLogger(mux, opts.MetricsPath, healthPath)
}

func healthHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(unhealthyMsg))

				return
			}
		}

		_, _ = w.Write([]byte(healthyBody))
	})
}
