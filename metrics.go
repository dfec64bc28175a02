package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "percentile_worker",
		Name:      "jobs_processed_total",
		Help:      "Sample sets processed successfully.",
	})
	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "percentile_worker",
		Name:      "jobs_failed_total",
		Help:      "Sample sets that failed to process.",
	})
	calculationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "percentile_worker",
		Name:      "calculation_duration_seconds",
		Help:      "Wall time spent computing a percentile summary.",
		Buckets:   prometheus.DefBuckets,
	})
)

// startMetricsListener exposes /metrics when METRICS_ADDR is set.
func startMetricsListener() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Error("metrics listener stopped")
		}
	}()
}
