package forecasting

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/chocolate-forecast-api/infrastructure/repository/mocks"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

var referenceNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return referenceNow
}

// boxesModel pontua apenas pelas caixas: score = caixas / 100
func boxesModel() *ModelStore {
	return NewModelStore([]float64{0, 0.01, 0, 0}, 0)
}

func allDarkLabels() *LabelMap {
	return NewLabelMap(map[int]string{1: domain.DarkChocolate, 2: domain.MilkChocolate})
}

func basedOn(predictions []domain.PredictionResult) []string {
	products := make([]string, 0, len(predictions))
	for _, p := range predictions {
		products = append(products, p.BasedOn)
	}
	return products
}

func TestBestSellerRanker_EmptyHistoryWinter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockSales.EXPECT().ListSales().Return([]domain.SalesRecord{}, nil)

	ranker := NewBestSellerRanker(
		StaticArtifacts{Labels: allDarkLabels(), Model: boxesModel()},
		mockSales,
		WithClock(fixedClock),
	)

	report, err := ranker.Rank(domain.PredictionRequest{MonthsAhead: 0, CurrentSeason: "winter"})
	require.NoError(t, err)

	boxes := make(map[string]int)
	for _, p := range report.All {
		boxes[p.BasedOn] = p.EstimatedBoxes
	}
	assert.Equal(t, map[string]int{
		domain.DarkChocolate:     130,
		domain.MilkChocolate:     110,
		domain.WhiteChocolate:    100,
		domain.HazelnutChocolate: 120,
		domain.AlmondChocolate:   110,
	}, boxes)

	// Milk e Almond empatam; a ordem do catálogo é mantida
	assert.Equal(t, []string{
		domain.DarkChocolate,
		domain.HazelnutChocolate,
		domain.MilkChocolate,
		domain.AlmondChocolate,
		domain.WhiteChocolate,
	}, basedOn(report.All))

	assert.Equal(t, report.All[0], report.Best)
	assert.Equal(t, report.All[:3], report.Top3)
	assert.Equal(t, domain.DarkChocolate, report.Best.Product)
	assert.Equal(t, 1.3, report.Best.SeasonalFactor)
	assert.Equal(t, "2024-01-15", report.Best.FormattedDate())
	assert.Equal(t, "January 2024", report.FormattedTargetDate())
	assert.Equal(t, "winter", report.Season)
	assert.True(t, strings.HasPrefix(report.ID, "pred_"))

	assert.Equal(t, []string{
		"📈 Seasonal boost: ×1.3",
		shortTermRecommendation,
	}, report.Recommendations)
}

func TestBestSellerRanker_UnknownSeason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockSales.EXPECT().ListSales().Return(nil, nil)

	ranker := NewBestSellerRanker(
		StaticArtifacts{Labels: allDarkLabels(), Model: boxesModel()},
		mockSales,
		WithClock(fixedClock),
	)

	report, err := ranker.Rank(domain.PredictionRequest{MonthsAhead: 5, CurrentSeason: "unknown_value"})
	require.NoError(t, err)

	require.Len(t, report.All, 5)
	for _, p := range report.All {
		assert.Equal(t, 1.0, p.SeasonalFactor, p.BasedOn)
		assert.Equal(t, 100, p.EstimatedBoxes, p.BasedOn)
	}

	// Todos empatados: ordem do catálogo
	assert.Equal(t, DefaultSeasonalProfile().Products(), basedOn(report.All))

	// 5 meses = 150 dias
	assert.Equal(t, "2024-06-13", report.Best.FormattedDate())
	assert.Equal(t, "June 2024", report.FormattedTargetDate())
	assert.Equal(t, []string{longTermRecommendation}, report.Recommendations)
}

func TestBestSellerRanker_UsesHistoricalMeans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockSales.EXPECT().ListSales().Return([]domain.SalesRecord{
		sale(domain.DarkChocolate, 45, "500"),
		sale(domain.DarkChocolate, 55, "700"),
	}, nil)

	ranker := NewBestSellerRanker(
		StaticArtifacts{Labels: allDarkLabels(), Model: boxesModel()},
		mockSales,
		WithClock(fixedClock),
	)

	report, err := ranker.Rank(domain.PredictionRequest{MonthsAhead: 1, CurrentSeason: "summer"})
	require.NoError(t, err)

	boxes := make(map[string]int)
	for _, p := range report.All {
		boxes[p.BasedOn] = p.EstimatedBoxes
	}

	// 50 * 0.9 para Dark; demais usam o fallback de 100
	assert.Equal(t, 45, boxes[domain.DarkChocolate])
	assert.Equal(t, 140, boxes[domain.WhiteChocolate])
	assert.Equal(t, 120, boxes[domain.MilkChocolate])
	assert.Equal(t, domain.WhiteChocolate, report.Best.BasedOn)
	assert.Equal(t, domain.DarkChocolate, report.All[len(report.All)-1].BasedOn)
}

func TestBestSellerRanker_FeatureVector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockScorer := mocks.NewMockScorer(ctrl)
	mockLabels := mocks.NewMockLabelDecoder(ctrl)

	mockSales.EXPECT().ListSales().Return(nil, nil)

	// O código do produto é sempre o placeholder, qualquer que seja o candidato
	expected := map[float64]float64{130: 2.5, 110: 3.5, 100: 0.4, 120: 1.0}
	mockScorer.EXPECT().Score(gomock.Any()).Times(5).DoAndReturn(func(features []float64) (float64, error) {
		require.Len(t, features, FeatureCount)
		assert.Equal(t, 0.0, features[FeatureProductCode])
		assert.Equal(t, 1.0, features[FeatureMonth])
		assert.Equal(t, 2024.0, features[FeatureYear])
		return expected[features[FeatureBoxes]], nil
	})

	// Meios arredondam para o par: 2.5 -> 2, 3.5 -> 4
	mockLabels.EXPECT().Lookup(2).Return(domain.MilkChocolate)
	mockLabels.EXPECT().Lookup(4).Return(domain.HazelnutChocolate).Times(2)
	mockLabels.EXPECT().Lookup(0).Return(domain.AlmondChocolate)
	mockLabels.EXPECT().Lookup(1).Return(domain.DarkChocolate)

	ranker := NewBestSellerRanker(
		StaticArtifacts{Labels: mockLabels, Model: mockScorer},
		mockSales,
		WithClock(fixedClock),
	)

	report, err := ranker.Rank(domain.PredictionRequest{MonthsAhead: 0, CurrentSeason: "winter"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.MilkChocolate,
		domain.AlmondChocolate,
		domain.DarkChocolate,
		domain.HazelnutChocolate,
		domain.WhiteChocolate,
	}, basedOn(report.All))
	assert.Equal(t, domain.HazelnutChocolate, report.Best.Product)
	assert.Equal(t, 3.5, report.Best.PredictedScore)
	assert.Equal(t, domain.MilkChocolate, report.All[2].Product)
	assert.Equal(t, []string{shortTermRecommendation}, report.Recommendations)
}

func TestBestSellerRanker_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockScorer := mocks.NewMockScorer(ctrl)
	mockObserver := mocks.NewMockRankingObserver(ctrl)

	tests := []struct {
		name      string
		request   domain.PredictionRequest
		artifacts StaticArtifacts
		setup     func()
		wantErr   error
	}{
		{
			name:      "months_ahead negativo",
			request:   domain.PredictionRequest{MonthsAhead: -1, CurrentSeason: "summer"},
			artifacts: StaticArtifacts{Labels: allDarkLabels(), Model: mockScorer},
			setup:     func() {},
			wantErr:   ErrValidation,
		},
		{
			name:      "Modelo ausente",
			request:   domain.PredictionRequest{MonthsAhead: 1, CurrentSeason: "summer"},
			artifacts: StaticArtifacts{Labels: allDarkLabels()},
			setup:     func() {},
			wantErr:   ErrModelLoad,
		},
		{
			name:      "Rótulos ausentes",
			request:   domain.PredictionRequest{MonthsAhead: 1, CurrentSeason: "summer"},
			artifacts: StaticArtifacts{Model: mockScorer},
			setup:     func() {},
			wantErr:   ErrDataLoad,
		},
		{
			name:      "Histórico ilegível",
			request:   domain.PredictionRequest{MonthsAhead: 1, CurrentSeason: "summer"},
			artifacts: StaticArtifacts{Labels: allDarkLabels(), Model: mockScorer},
			setup: func() {
				mockSales.EXPECT().ListSales().Return(nil, errors.New("arquivo corrompido"))
			},
			wantErr: ErrDataLoad,
		},
		{
			name:      "Modelo rejeita o vetor",
			request:   domain.PredictionRequest{MonthsAhead: 1, CurrentSeason: "summer"},
			artifacts: StaticArtifacts{Labels: allDarkLabels(), Model: mockScorer},
			setup: func() {
				mockSales.EXPECT().ListSales().Return(nil, nil)
				mockScorer.EXPECT().Score(gomock.Any()).Return(0.0, errors.New("shape mismatch"))
			},
			wantErr: ErrPrediction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			mockObserver.EXPECT().
				ObserveRanking(gomock.Nil(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ *domain.BestSellerReport, err error, _ time.Duration) {
					assert.True(t, errors.Is(err, tt.wantErr))
				})

			ranker := NewBestSellerRanker(tt.artifacts, mockSales, WithObserver(mockObserver))

			report, err := ranker.Rank(tt.request)

			require.Error(t, err)
			assert.Nil(t, report)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestBestSellerRanker_ObserverOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockObserver := mocks.NewMockRankingObserver(ctrl)

	mockSales.EXPECT().ListSales().Return(nil, nil)
	mockObserver.EXPECT().ObserveRanking(gomock.Not(gomock.Nil()), gomock.Nil(), gomock.Any())

	ranker := NewBestSellerRanker(
		StaticArtifacts{Labels: allDarkLabels(), Model: boxesModel()},
		mockSales,
		WithObserver(mockObserver),
	)

	_, err := ranker.Rank(domain.PredictionRequest{MonthsAhead: 3, CurrentSeason: "summer"})
	require.NoError(t, err)
}

func TestBestSellerRanker_CustomProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSales := repomocks.NewMockSalesRepository(ctrl)
	mockSales.EXPECT().ListSales().Return(nil, nil)

	profile := &SeasonalProfile{
		products: []string{domain.MilkChocolate, domain.DarkChocolate},
		factors: map[string]map[domain.Season]float64{
			domain.DarkChocolate: {domain.Spring: 2.0},
		},
	}

	ranker := NewBestSellerRanker(
		StaticArtifacts{Labels: allDarkLabels(), Model: boxesModel()},
		mockSales,
		WithSeasonalProfile(profile),
		WithClock(fixedClock),
	)

	report, err := ranker.Rank(domain.PredictionRequest{MonthsAhead: 2, CurrentSeason: "spring"})
	require.NoError(t, err)

	require.Len(t, report.All, 2)
	assert.Len(t, report.Top3, 2)
	assert.Equal(t, domain.DarkChocolate, report.Best.BasedOn)
	assert.Equal(t, 200, report.Best.EstimatedBoxes)
	assert.Equal(t, domain.MilkChocolate, report.Best.Product)
	assert.Equal(t, []string{"📈 Seasonal boost: ×2.0", shortTermRecommendation}, report.Recommendations)
}

func TestDecodeScore(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.4, 0},
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{2.51, 3},
		{-0.6, -1},
		{3.0, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeScore(tt.score), tt.score)
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		factor      float64
		monthsAhead int
		want        []string
	}{
		{"Fator no limite não gera boost", 1.1, 2, []string{shortTermRecommendation}},
		{"Fator acima do limite", 1.2, 3, []string{"📈 Seasonal boost: ×1.2", longTermRecommendation}},
		{"Curto prazo", 1.0, 0, []string{shortTermRecommendation}},
		{"Longo prazo", 0.9, 12, []string{longTermRecommendation}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := domain.PredictionResult{SeasonalFactor: tt.factor}
			assert.Equal(t, tt.want, recommendations(best, tt.monthsAhead))
		})
	}
}
