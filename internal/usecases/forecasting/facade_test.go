package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func TestPredictionFacade_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRanker := mocks.NewMockRanker(ctrl)

	report := &domain.BestSellerReport{
		TargetDate: time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
		Best: domain.PredictionResult{
			Product:        domain.WhiteChocolate,
			PredictedScore: 3.14159,
			EstimatedBoxes: 140,
		},
	}

	tests := []struct {
		name    string
		facade  *PredictionFacade
		request domain.PredictionRequest
	}{
		{
			name:    "Padrões de fábrica",
			facade:  NewPredictionFacade(mockRanker),
			request: domain.PredictionRequest{MonthsAhead: 3, CurrentSeason: "summer"},
		},
		{
			name:    "Padrões configurados",
			facade:  NewPredictionFacade(mockRanker).WithDefaults(6, "winter"),
			request: domain.PredictionRequest{MonthsAhead: 6, CurrentSeason: "winter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRanker.EXPECT().Rank(tt.request).Return(report, nil)

			summary := tt.facade.Summary()

			assert.Equal(t, domain.StatusSuccess, summary.Status)
			assert.Equal(t, "🏆 Best predicted product: White Chocolate with score 3.14", summary.Prediction)
			assert.Equal(t, "Estimate: 140 boxes in April 2024", summary.Details)
		})
	}
}

func TestPredictionFacade_SummaryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRanker := mocks.NewMockRanker(ctrl)
	mockRanker.EXPECT().Rank(gomock.Any()).Return(nil, NewModelLoadError(nil, "no model loaded"))

	summary := NewPredictionFacade(mockRanker).Summary()

	assert.Equal(t, domain.StatusError, summary.Status)
	assert.Equal(t, "Prediction error: model load error: no model loaded", summary.Prediction)
	assert.Empty(t, summary.Details)
}

func TestPredictionFacade_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRanker := mocks.NewMockRanker(ctrl)
	gomock.InOrder(
		mockRanker.EXPECT().Rank(gomock.Any()).Return(&domain.BestSellerReport{
			TargetDate: time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
			Best:       domain.PredictionResult{Product: domain.DarkChocolate, PredictedScore: 1, EstimatedBoxes: 90},
		}, nil),
		mockRanker.EXPECT().Rank(gomock.Any()).Return(nil, NewDataLoadError(nil, "sales history")),
	)

	facade := NewPredictionFacade(mockRanker)

	assert.Equal(t,
		"🏆 Best predicted product: Dark Chocolate with score 1.00. Estimate: 90 boxes in April 2024",
		facade.Summarize())
	assert.Equal(t, "Prediction error: data load error: sales history", facade.Summarize())
}
