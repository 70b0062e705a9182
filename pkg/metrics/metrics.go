package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripsmith", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tripsmith", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ModelRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripsmith", Name: "model_requests_total", Help: "Generative model calls."},
		[]string{"provider", "status"},
	)
	ModelLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tripsmith", Name: "model_request_duration_seconds",
			Help:    "Generative model call duration seconds.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)
	PlanOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripsmith", Name: "plan_outcomes_total", Help: "Trip planning outcomes."},
		[]string{"outcome"}, // outcome: ok|invalid_input|no_data|generation_failed|error
	)
	ResolverFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "tripsmith", Name: "name_resolver_fallbacks_total", Help: "Name resolutions that fell back to raw input."},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ModelRequests, ModelLatency, PlanOutcomes, ResolverFallbacks)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveModel(provider string, err error, dur time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ModelRequests.WithLabelValues(provider, status).Inc()
	ModelLatency.WithLabelValues(provider).Observe(dur.Seconds())
}

func ObservePlan(outcome string) {
	PlanOutcomes.WithLabelValues(outcome).Inc()
}
