package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в Prometheus и возвращает коллектор
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"service", "method", "endpoint", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "endpoint"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to upstream services",
		}, []string{"service", "target", "status"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "target"}),
	}
}

// ObserveHTTPRequest записывает метрики обработанного входящего запроса
func (m *Metrics) ObserveHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, endpoint, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, endpoint).Observe(duration.Seconds())
}

// ObserveUpstreamRequest записывает метрики исходящего запроса к внешнему сервису.
// Для сетевых ошибок вместо кода статуса передается status = "error".
func (m *Metrics) ObserveUpstreamRequest(target, status string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(m.serviceName, target, status).Inc()
	m.upstreamRequestDuration.WithLabelValues(m.serviceName, target).Observe(duration.Seconds())
}
