package forecasting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func TestSingleScorer_Score(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := mocks.NewMockScorer(ctrl)
	mockLabels := mocks.NewMockLabelDecoder(ctrl)

	mockScorer.EXPECT().Score([]float64{3, 25, 7, 2024}).Return(1.7, nil)
	mockLabels.EXPECT().Lookup(3).Return(domain.WhiteChocolate)

	scorer := NewSingleScorer(StaticArtifacts{Labels: mockLabels, Model: mockScorer})

	result, err := scorer.Score(domain.SingleScoreInput{
		Year:           2024,
		Month:          7,
		ProductEncoded: 3,
		BoxesShipped:   25,
	})

	require.NoError(t, err)
	assert.Equal(t, &domain.SingleScoreResult{
		ProductName:    domain.WhiteChocolate,
		PredictedScore: 1.7,
	}, result)
}

func TestSingleScorer_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := mocks.NewMockScorer(ctrl)
	labels := allDarkLabels()

	tests := []struct {
		name      string
		input     domain.SingleScoreInput
		artifacts StaticArtifacts
		setup     func()
		wantErr   error
	}{
		{
			name:      "Mês inválido",
			input:     domain.SingleScoreInput{Year: 2024, Month: 13},
			artifacts: StaticArtifacts{Labels: labels, Model: mockScorer},
			setup:     func() {},
			wantErr:   ErrValidation,
		},
		{
			name:      "Caixas negativas",
			input:     domain.SingleScoreInput{Year: 2024, Month: 1, BoxesShipped: -5},
			artifacts: StaticArtifacts{Labels: labels, Model: mockScorer},
			setup:     func() {},
			wantErr:   ErrValidation,
		},
		{
			name:      "Modelo ausente",
			input:     domain.SingleScoreInput{Year: 2024, Month: 1},
			artifacts: StaticArtifacts{Labels: labels},
			setup:     func() {},
			wantErr:   ErrModelLoad,
		},
		{
			name:      "Modelo rejeita o vetor",
			input:     domain.SingleScoreInput{Year: 2024, Month: 1},
			artifacts: StaticArtifacts{Labels: labels, Model: mockScorer},
			setup: func() {
				mockScorer.EXPECT().Score(gomock.Any()).Return(0.0, errors.New("boom"))
			},
			wantErr: ErrPrediction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := NewSingleScorer(tt.artifacts).Score(tt.input)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
