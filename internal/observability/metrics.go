package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	httpRequestsTotal *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
	knowledgeRebuilds prometheus.Counter
	assistantAnswers  *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"})

		httpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campus_http_latency_seconds",
			Help:    "Latency distribution for HTTP requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"})

		knowledgeRebuilds = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campus_knowledge_rebuilds_total",
			Help: "Number of knowledge context rebuilds.",
		})

		assistantAnswers = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_assistant_answers_total",
			Help: "Assistant answers by outcome.",
		}, []string{"outcome"})

		prometheus.MustRegister(httpRequestsTotal, httpLatency, knowledgeRebuilds, assistantAnswers)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatency
}

// KnowledgeRebuilds exposes the rebuild counter.
func KnowledgeRebuilds() prometheus.Counter {
	RegisterMetrics()
	return knowledgeRebuilds
}

// AssistantAnswers exposes the answer outcome counter.
func AssistantAnswers() *prometheus.CounterVec {
	RegisterMetrics()
	return assistantAnswers
}
