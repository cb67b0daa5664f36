package domain

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	PredictionDateLayout = "2006-01-02"
	TargetDateLayout     = "January 2006"
)

// PredictionRequest é a entrada do ranking de mais vendidos
type PredictionRequest struct {
	MonthsAhead   int    `json:"months_ahead"`
	CurrentSeason string `json:"current_season"`
}

// PredictionResult é o resultado da pontuação de um produto candidato
type PredictionResult struct {
	Product        string    `json:"product"`
	BasedOn        string    `json:"based_on"`
	PredictedScore float64   `json:"predicted_score"`
	EstimatedBoxes int       `json:"estimated_boxes"`
	SeasonalFactor float64   `json:"seasonal_factor"`
	PredictionDate time.Time `json:"-"`
}

// FormattedDate retorna a data da previsão no formato ISO (yyyy-mm-dd)
func (p PredictionResult) FormattedDate() string {
	return p.PredictionDate.Format(PredictionDateLayout)
}

// MarshalJSON serializa a data da previsão no formato yyyy-mm-dd
func (p PredictionResult) MarshalJSON() ([]byte, error) {
	type alias PredictionResult
	return json.Marshal(struct {
		alias
		PredictionDate string `json:"prediction_date"`
	}{
		alias:          alias(p),
		PredictionDate: p.FormattedDate(),
	})
}

// BestSellerReport é o conjunto ordenado de previsões de um pedido.
// All está ordenado por PredictedScore decrescente; Best e Top3 são
// visões sobre esse mesmo slice.
type BestSellerReport struct {
	ID              string
	MonthsAhead     int
	TargetDate      time.Time
	Season          string
	Best            PredictionResult
	Top3            []PredictionResult
	All             []PredictionResult
	Recommendations []string
}

// FormattedTargetDate retorna o mês e ano alvo (ex: October 2026)
func (r BestSellerReport) FormattedTargetDate() string {
	return r.TargetDate.Format(TargetDateLayout)
}

// BestSellerResponse é o corpo de resposta de sucesso do ranking
type BestSellerResponse struct {
	Status           string             `json:"status"`
	PredictionID     string             `json:"prediction_id"`
	PredictionPeriod string             `json:"prediction_period"`
	TargetDate       string             `json:"target_date"`
	BestSeller       PredictionResult   `json:"best_seller"`
	Top3Predictions  []PredictionResult `json:"top_3_predictions"`
	AllPredictions   []PredictionResult `json:"all_predictions"`
	Recommendations  []string           `json:"recommendations"`
	SeasonAnalyzed   string             `json:"season_analyzed"`
}

// NewBestSellerResponse monta a resposta a partir do relatório
func NewBestSellerResponse(report *BestSellerReport) BestSellerResponse {
	return BestSellerResponse{
		Status:           StatusSuccess,
		PredictionID:     report.ID,
		PredictionPeriod: fmt.Sprintf("%d months ahead", report.MonthsAhead),
		TargetDate:       report.FormattedTargetDate(),
		BestSeller:       report.Best,
		Top3Predictions:  report.Top3,
		AllPredictions:   report.All,
		Recommendations:  report.Recommendations,
		SeasonAnalyzed:   report.Season,
	}
}

// PredictionSummary é a frase resumida da previsão padrão
type PredictionSummary struct {
	Prediction string `json:"prediction"`
	Details    string `json:"details,omitempty"`
	Status     string `json:"status"`
}

// SingleScoreInput é a entrada da pontuação direta de um vetor de features
type SingleScoreInput struct {
	Year           int `json:"year"`
	Month          int `json:"month"`
	ProductEncoded int `json:"product_encoded"`
	BoxesShipped   int `json:"boxes_shipped"`
}

// SingleScoreResult é o resultado da pontuação direta
type SingleScoreResult struct {
	ProductName    string  `json:"product_name"`
	PredictedScore float64 `json:"predicted_score"`
}

// ArtifactStatus descreve os artefatos carregados em memória
type ArtifactStatus struct {
	ModelPath        string    `json:"model_path"`
	LabelMappingPath string    `json:"label_mapping_path"`
	Labels           int       `json:"labels"`
	Products         []Product `json:"products"`
	Features         int       `json:"features"`
	LoadedAt         time.Time `json:"loaded_at"`
	Version          int       `json:"version"`
}
