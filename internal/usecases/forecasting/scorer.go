package forecasting

import (
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

// FeatureScorer pontua um vetor de features informado diretamente
type FeatureScorer interface {
	Score(input domain.SingleScoreInput) (*domain.SingleScoreResult, error)
}

// SingleScorer pontua diretamente um vetor de features informado pelo cliente
type SingleScorer struct {
	artifacts ArtifactProvider
}

func NewSingleScorer(artifacts ArtifactProvider) *SingleScorer {
	return &SingleScorer{
		artifacts: artifacts,
	}
}

// Score pontua [product_encoded, boxes_shipped, month, year]. O nome
// devolvido é o do código informado, não o do score.
func (s *SingleScorer) Score(input domain.SingleScoreInput) (*domain.SingleScoreResult, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, NewValidationError("month must be between 1 and 12, got %d", input.Month)
	}
	if input.BoxesShipped < 0 {
		return nil, NewValidationError("boxes_shipped must be >= 0, got %d", input.BoxesShipped)
	}

	artifacts := s.artifacts.Snapshot()
	if artifacts.Model == nil {
		return nil, NewModelLoadError(nil, "no model loaded")
	}
	if artifacts.Labels == nil {
		return nil, NewDataLoadError(nil, "no label mapping loaded")
	}

	features := make([]float64, FeatureCount)
	features[FeatureProductCode] = float64(input.ProductEncoded)
	features[FeatureBoxes] = float64(input.BoxesShipped)
	features[FeatureMonth] = float64(input.Month)
	features[FeatureYear] = float64(input.Year)

	score, err := artifacts.Model.Score(features)
	if err != nil {
		return nil, asPredictionError(err, "input features")
	}

	return &domain.SingleScoreResult{
		ProductName:    artifacts.Labels.Lookup(input.ProductEncoded),
		PredictedScore: score,
	}, nil
}
