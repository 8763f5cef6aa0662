// Package metrics собирает Prometheus-метрики HTTP-запросов и доменных событий.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics хранит коллекторы сервиса в собственном registry,
// чтобы тесты могли создавать независимые экземпляры.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	signupsTotal     prometheus.Counter
	unregistersTotal prometheus.Counter
}

// New создаёт и регистрирует коллекторы.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "activity_signup",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
		}, []string{"route", "method", "status"}),
		signupsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "activity_signup",
			Name:      "signups_total",
			Help:      "Number of accepted signups.",
		}),
		unregistersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "activity_signup",
			Name:      "unregisters_total",
			Help:      "Number of accepted unregisters.",
		}),
	}

	m.registry.MustRegister(m.requestDuration, m.signupsTotal, m.unregistersTotal)
	return m
}

// Handler возвращает HTTP-обработчик экспозиции для /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SignupAccepted инкрементирует счётчик успешных записей.
func (m *Metrics) SignupAccepted() {
	m.signupsTotal.Inc()
}

// UnregisterAccepted инкрементирует счётчик успешных снятий с активности.
func (m *Metrics) UnregisterAccepted() {
	m.unregistersTotal.Inc()
}

// Middleware измеряет длительность запроса с разбивкой по маршруту chi.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
