package handler

import (
	"net/http"

	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/chocolate-forecast-api/pkg/log"
)

// bestSellerBody espelha domain.PredictionRequest com ponteiros para detectar campos ausentes
type bestSellerBody struct {
	MonthsAhead   *int    `json:"months_ahead"`
	CurrentSeason *string `json:"current_season"`
}

func (b bestSellerBody) missing() []string {
	var fields []string
	if b.MonthsAhead == nil {
		fields = append(fields, "months_ahead")
	}
	if b.CurrentSeason == nil {
		fields = append(fields, "current_season")
	}
	return fields
}

func (b bestSellerBody) request() domain.PredictionRequest {
	return domain.PredictionRequest{MonthsAhead: *b.MonthsAhead, CurrentSeason: *b.CurrentSeason}
}

type scoreBody struct {
	Year           *int `json:"year"`
	Month          *int `json:"month"`
	ProductEncoded *int `json:"product_encoded"`
	BoxesShipped   *int `json:"boxes_shipped"`
}

func (b scoreBody) missing() []string {
	var fields []string
	for _, field := range []struct {
		name  string
		value *int
	}{
		{"year", b.Year},
		{"month", b.Month},
		{"product_encoded", b.ProductEncoded},
		{"boxes_shipped", b.BoxesShipped},
	} {
		if field.value == nil {
			fields = append(fields, field.name)
		}
	}
	return fields
}

func (b scoreBody) input() domain.SingleScoreInput {
	return domain.SingleScoreInput{
		Year:           *b.Year,
		Month:          *b.Month,
		ProductEncoded: *b.ProductEncoded,
		BoxesShipped:   *b.BoxesShipped,
	}
}

// PredictBestSeller retorna o ranking dos produtos para N meses à frente
func PredictBestSeller(ranker forecasting.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body bestSellerBody
		if err := decodeBody(r, &body); err != nil {
			writeDecodeError(w, err)
			return
		}
		if missing := body.missing(); len(missing) > 0 {
			writeMissingFields(w, missing)
			return
		}
		request := body.request()

		logger.WithFields(log.Fields{
			"months_ahead": request.MonthsAhead,
			"season":       request.CurrentSeason,
		}).Info("best-seller: gerando ranking")

		report, err := ranker.Rank(request)
		if err != nil {
			logger.WithError(err).Error("best-seller: erro ao gerar ranking")
			writeForecastError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"prediction_id": report.ID,
			"best_seller":   report.Best.Product,
			"based_on":      report.Best.BasedOn,
		}).Info("best-seller: ranking gerado com sucesso")

		writeJSON(w, r, http.StatusOK, domain.NewBestSellerResponse(report))
	}
}

// PredictSimple retorna a frase resumo da previsão padrão
func PredictSimple(summarizer forecasting.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary := summarizer.Summary()

		status := http.StatusOK
		if summary.Status != domain.StatusSuccess {
			status = http.StatusInternalServerError
		}

		writeJSON(w, r, status, summary)
	}
}

// ScoreFeatures pontua um vetor de features informado pelo cliente
func ScoreFeatures(scorer forecasting.FeatureScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body scoreBody
		if err := decodeBody(r, &body); err != nil {
			writeDecodeError(w, err)
			return
		}
		if missing := body.missing(); len(missing) > 0 {
			writeMissingFields(w, missing)
			return
		}

		result, err := scorer.Score(body.input())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("score: erro ao pontuar features")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
