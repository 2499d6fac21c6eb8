// Package metrics exposes Prometheus collectors for the HTTP layer, intent
// routing, flow transitions and model calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hr-assistant/internal/conversation"
	"hr-assistant/internal/flow"
	"hr-assistant/pkg/llmprovider"
)

// Namespace prefixes every metric name.
const Namespace = "hr_assistant"

// Collector owns a private registry so tests and multiple servers never
// collide on the global one.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	intentsTotal     *prometheus.CounterVec
	flowTransitions  *prometheus.CounterVec
	llmCallsTotal    *prometheus.CounterVec
	llmCallDuration  *prometheus.HistogramVec
	rateLimitedTotal prometheus.Counter
}

var (
	_ flow.Observer        = (*Collector)(nil)
	_ llmprovider.Recorder = (*Collector)(nil)
)

// New registers all collectors, plus the Go and process collectors, on a
// fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		intentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "intents_total",
			Help:      "Routed queries by intent and classification source",
		}, []string{"intent", "source"}),
		flowTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "flow_transitions_total",
			Help:      "Form flow status changes",
		}, []string{"flow", "from", "to"}),
		llmCallsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "llm_calls_total",
			Help:      "Model calls by final provider and outcome",
		}, []string{"provider", "status"}),
		llmCallDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Model call latency including retries and fallback",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"provider"}),
		rateLimitedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveHTTPRequest records one served request. path should be the route
// template, not the raw URL.
func (c *Collector) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveIntent records a routing decision.
func (c *Collector) ObserveIntent(intent, source string) {
	c.intentsTotal.WithLabelValues(intent, source).Inc()
}

// ObserveTransition records a flow status change.
func (c *Collector) ObserveTransition(f conversation.Flow, from, to flow.Status) {
	c.flowTransitions.WithLabelValues(string(f), from.String(), to.String()).Inc()
}

// ObserveLLMCall records one Manager call.
func (c *Collector) ObserveLLMCall(provider string, success bool, elapsed time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	if provider == "" {
		provider = "none"
	}
	c.llmCallsTotal.WithLabelValues(provider, status).Inc()
	c.llmCallDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveRateLimited records a rejected request.
func (c *Collector) ObserveRateLimited() {
	c.rateLimitedTotal.Inc()
}
