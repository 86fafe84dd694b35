// Package metrics Prometheus 指标定义与导出
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 服务指标集合
type Metrics struct {
	registry *prometheus.Registry

	// HTTP 请求指标
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// 业务指标
	AuthAttemptsTotal *prometheus.CounterVec
	UploadsTotal      *prometheus.CounterVec
	UploadBytes       *prometheus.CounterVec
}

// New 在独立 Registry 上创建指标，测试中可多次创建互不冲突
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		AuthAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_attempts_total",
				Help:      "Register/login attempts by outcome",
			},
			[]string{"action", "result"},
		),
		UploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploads_total",
				Help:      "Stored files by kind and backend",
			},
			[]string{"kind", "backend"},
		),
		UploadBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upload_bytes_total",
				Help:      "Stored bytes by kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveRequest 记录一次 HTTP 请求
func (m *Metrics) ObserveRequest(method, path, status string, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordAuth 记录注册/登录结果，result 取 success / failure
func (m *Metrics) RecordAuth(action, result string) {
	if m == nil {
		return
	}
	m.AuthAttemptsTotal.WithLabelValues(action, result).Inc()
}

// RecordUpload 记录一次成功存储
func (m *Metrics) RecordUpload(kind, backend string, size int64) {
	if m == nil {
		return
	}
	m.UploadsTotal.WithLabelValues(kind, backend).Inc()
	m.UploadBytes.WithLabelValues(kind).Add(float64(size))
}

// Handler 返回 /metrics 的 HTTP Handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 返回底层 Registry
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
