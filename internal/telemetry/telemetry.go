// Package telemetry exposes the search run's Prometheus metrics (spec §6
// expansion: seeds scanned, lanes surviving the pre-filter, matches found,
// and per-batch duration).
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every counter/histogram the driver reports through.
type Metrics struct {
	SeedsScanned   prometheus.Counter
	LanesSurvived  prometheus.Counter
	MatchesTotal   prometheus.Counter
	BatchDuration  prometheus.Histogram
	registry       *prometheus.Registry
}

// New registers a fresh metric set on its own registry, so concurrent test
// runs never collide on the default global registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		SeedsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ouija_seeds_scanned_total",
			Help: "Total seeds evaluated by the vector pre-filter.",
		}),
		LanesSurvived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ouija_lanes_survived_total",
			Help: "Total lane slots that survived the vector pre-filter.",
		}),
		MatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ouija_matches_total",
			Help: "Total seeds accepted by the single-seed evaluator.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ouija_batch_duration_seconds",
			Help:    "Wall time to evaluate one lane batch.",
			Buckets: prometheus.DefBuckets,
		}),
		registry: reg,
	}
	reg.MustRegister(m.SeedsScanned, m.LanesSurvived, m.MatchesTotal, m.BatchDuration)
	return m
}

// ObserveBatch records how long a single lane batch took to evaluate.
func (m *Metrics) ObserveBatch(d time.Duration) {
	m.BatchDuration.Observe(d.Seconds())
}

// Handler returns the HTTP handler promhttp exposes /metrics through.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP listener on addr exposing the metrics handler at
// /metrics, returning once ctx is cancelled or the listener fails.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
