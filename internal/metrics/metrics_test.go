package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chocolate-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	return rr.Body.String()
}

func newRoutedHandler(t *testing.T) (*Collector, http.Handler) {
	t.Helper()

	collector, err := NewCollector()
	require.NoError(t, err)

	rt := router.New(router.WithRoutes(router.Route{
		Path:   "/v1/predictions/best-seller",
		Method: http.MethodPost,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}),
	}))

	return collector, collector.Middleware()(rt)
}

func countSeries(body, metric string) int {
	count := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, metric+"{") {
			count++
		}
	}
	return count
}

func TestCollector_Middleware(t *testing.T) {
	collector, handler := newRoutedHandler(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/predictions/best-seller", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)

	body := scrape(t, collector)
	assert.Contains(t, body, `chocolate_forecast_http_requests_total{method="POST",path="/v1/predictions/best-seller",status="202"} 1`)
	assert.Contains(t, body, `chocolate_forecast_http_request_duration_seconds_count{method="POST",path="/v1/predictions/best-seller",status="202"} 1`)
}

func TestCollector_Middleware_WithoutRouter(t *testing.T) {
	collector, err := NewCollector()
	require.NoError(t, err)

	handler := collector.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/qualquer/caminho", nil))

	body := scrape(t, collector)
	assert.Contains(t, body, `chocolate_forecast_http_requests_total{method="GET",path="unmatched",status="200"} 1`)
	assert.NotContains(t, body, "/qualquer/caminho")
}

func TestCollector_Middleware_UnmatchedPathsShareOneSeries(t *testing.T) {
	collector, handler := newRoutedHandler(t)

	const requests = 200
	for i := 0; i < requests; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/garbage/%d", i), nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	body := scrape(t, collector)
	assert.Equal(t, 1, countSeries(body, "chocolate_forecast_http_requests_total"))
	assert.Contains(t, body, fmt.Sprintf(`chocolate_forecast_http_requests_total{method="GET",path="unmatched",status="404"} %d`, requests))
	assert.NotContains(t, body, "/garbage/")
}

func TestCollector_ObserveRanking(t *testing.T) {
	collector, err := NewCollector()
	require.NoError(t, err)

	report := &domain.BestSellerReport{
		Best: domain.PredictionResult{BasedOn: domain.WhiteChocolate},
	}

	collector.ObserveRanking(report, nil, 10*time.Millisecond)
	collector.ObserveRanking(nil, forecasting.NewValidationError("months_ahead must be >= 0"), time.Millisecond)
	collector.ObserveRanking(nil, forecasting.NewModelLoadError(nil, "no model loaded"), time.Millisecond)

	body := scrape(t, collector)
	assert.Contains(t, body, `chocolate_forecast_ranking_total{outcome="success"} 1`)
	assert.Contains(t, body, `chocolate_forecast_ranking_total{outcome="validation_error"} 1`)
	assert.Contains(t, body, `chocolate_forecast_ranking_total{outcome="model_load_error"} 1`)
	assert.Contains(t, body, `chocolate_forecast_ranking_best_seller_total{based_on="White Chocolate"} 1`)
	assert.Contains(t, body, `chocolate_forecast_ranking_duration_seconds_count 3`)
}
