package handler

import (
	"net/http"

	"github.com/vfg2006/chocolate-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// PredictionServices agrupa os casos de uso expostos em /v1/predictions
type PredictionServices struct {
	Ranker     forecasting.Ranker
	Summarizer forecasting.Summarizer
	Scorer     forecasting.FeatureScorer
}

func Predictions(services PredictionServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/predictions/best-seller",
			Method:  http.MethodPost,
			Handler: PredictBestSeller(services.Ranker),
		},
		{
			Path:    "/v1/predictions/simple",
			Method:  http.MethodPost,
			Handler: PredictSimple(services.Summarizer),
		},
		{
			Path:    "/v1/predictions/score",
			Method:  http.MethodPost,
			Handler: ScoreFeatures(services.Scorer),
		},
	}
}

func Sales(service insighting.SalesInsighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/dashboard",
			Method:  http.MethodGet,
			Handler: GetSalesDashboard(service),
		},
	}
}

func Artifacts(store ArtifactStatusProvider, reloader ArtifactReloader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/artifacts/reload",
			Method:  http.MethodPost,
			Handler: ReloadArtifacts(reloader),
		},
		{
			Path:    "/v1/artifacts/status",
			Method:  http.MethodGet,
			Handler: GetArtifactStatus(store, reloader),
		},
	}
}

// Metrics expõe o handler de métricas no formato do Prometheus
func Metrics(h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}
