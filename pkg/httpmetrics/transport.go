package httpmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/metrics"
)

// Transport обёртка над http.RoundTripper, записывающая метрики исходящих
// запросов к внешнему сервису target
type Transport struct {
	base    http.RoundTripper
	metrics *metrics.Metrics
	target  string
}

// Wrap оборачивает base (nil — http.DefaultTransport) сбором метрик
func Wrap(base http.RoundTripper, m *metrics.Metrics, target string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:    base,
		metrics: m,
		target:  target,
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.metrics.ObserveUpstreamRequest(t.target, status, time.Since(start))

	return resp, err
}
