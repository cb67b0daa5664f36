// Package metrics expõe as métricas Prometheus da API
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/chocolate-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting"
)

const namespace = "chocolate_forecast"

// Collector registra métricas HTTP e do ranking de previsões
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	rankingDuration prometheus.Histogram
	rankingTotal    *prometheus.CounterVec
	bestSellerTotal *prometheus.CounterVec
}

// NewCollector cria os coletores em um registro próprio
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution for inbound HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests.",
		}, []string{"method", "path", "status"}),
		rankingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ranking",
			Name:      "duration_seconds",
			Help:      "Time spent building a best seller ranking.",
			Buckets:   prometheus.DefBuckets,
		}),
		rankingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ranking",
			Name:      "total",
			Help:      "Best seller rankings by outcome.",
		}, []string{"outcome"}),
		bestSellerTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ranking",
			Name:      "best_seller_total",
			Help:      "Number of times each candidate product ranked first.",
		}, []string{"based_on"}),
	}

	for _, collector := range []prometheus.Collector{
		c.requestDuration,
		c.requestTotal,
		c.rankingDuration,
		c.rankingTotal,
		c.bestSellerTotal,
	} {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Handler expõe as métricas no formato Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware registra duração e total das requisições HTTP.
// O label path usa o padrão da rota casada pelo router, nunca o caminho bruto.
func (c *Collector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			r, route := router.TrackRoute(r)
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			path := route()
			status := strconv.Itoa(rw.status)
			c.requestTotal.WithLabelValues(r.Method, path, status).Inc()
			c.requestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}

// ObserveRanking implementa forecasting.RankingObserver
func (c *Collector) ObserveRanking(report *domain.BestSellerReport, err error, elapsed time.Duration) {
	c.rankingDuration.Observe(elapsed.Seconds())

	if err != nil {
		c.rankingTotal.WithLabelValues(outcome(err)).Inc()
		return
	}

	c.rankingTotal.WithLabelValues("success").Inc()
	if report != nil {
		c.bestSellerTotal.WithLabelValues(report.Best.BasedOn).Inc()
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, forecasting.ErrValidation):
		return "validation_error"
	case errors.Is(err, forecasting.ErrDataLoad):
		return "data_load_error"
	case errors.Is(err, forecasting.ErrModelLoad):
		return "model_load_error"
	case errors.Is(err, forecasting.ErrPrediction):
		return "prediction_error"
	default:
		return "error"
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
