// Package forecasting contém o pipeline de previsão do produto mais vendido
package forecasting

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chocolate-forecast-api/infrastructure/repository"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/pkg/utils"
)

const (
	// placeholderProductCode ocupa a posição do código do produto no vetor de
	// features; o modelo sempre recebe o mesmo valor, qualquer que seja o candidato.
	placeholderProductCode = 0

	seasonalBoostThreshold = 1.1
	shortTermMonths        = 2
	topPredictions         = 3
)

const (
	shortTermRecommendation = "⚡ Short-term prediction - more reliable"
	longTermRecommendation  = "🔮 Long-term prediction - higher uncertainty"
)

// Ranker prevê o produto mais vendido para um pedido
type Ranker interface {
	Rank(request domain.PredictionRequest) (*domain.BestSellerReport, error)
}

// RankingObserver recebe o resultado de cada ranking (ex: métricas)
type RankingObserver interface {
	ObserveRanking(report *domain.BestSellerReport, err error, elapsed time.Duration)
}

// BestSellerRanker pontua os produtos do catálogo e os ordena pelo score
type BestSellerRanker struct {
	artifacts ArtifactProvider
	sales     repository.SalesRepository
	profile   *SeasonalProfile
	observer  RankingObserver
	now       func() time.Time
}

// RankerOption configura o BestSellerRanker
type RankerOption func(*BestSellerRanker)

// WithClock substitui o relógio usado para a data alvo
func WithClock(now func() time.Time) RankerOption {
	return func(r *BestSellerRanker) {
		r.now = now
	}
}

// WithObserver registra um observador dos rankings
func WithObserver(observer RankingObserver) RankerOption {
	return func(r *BestSellerRanker) {
		r.observer = observer
	}
}

// WithSeasonalProfile substitui a tabela de multiplicadores sazonais
func WithSeasonalProfile(profile *SeasonalProfile) RankerOption {
	return func(r *BestSellerRanker) {
		r.profile = profile
	}
}

func NewBestSellerRanker(
	artifacts ArtifactProvider,
	sales repository.SalesRepository,
	opts ...RankerOption,
) *BestSellerRanker {
	ranker := &BestSellerRanker{
		artifacts: artifacts,
		sales:     sales,
		profile:   DefaultSeasonalProfile(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(ranker)
	}

	return ranker
}

// Rank executa o pipeline completo. Qualquer falha aborta o pedido inteiro;
// apenas a ausência de histórico de um produto é tratada localmente.
func (r *BestSellerRanker) Rank(request domain.PredictionRequest) (*domain.BestSellerReport, error) {
	startedAt := time.Now()

	report, err := r.rank(request)

	if r.observer != nil {
		r.observer.ObserveRanking(report, err, time.Since(startedAt))
	}

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"months_ahead": request.MonthsAhead,
			"season":       request.CurrentSeason,
		}).Error("Erro ao gerar ranking de mais vendidos")
		return nil, err
	}

	return report, nil
}

func (r *BestSellerRanker) rank(request domain.PredictionRequest) (*domain.BestSellerReport, error) {
	if request.MonthsAhead < 0 {
		return nil, NewValidationError("months_ahead must be >= 0, got %d", request.MonthsAhead)
	}

	artifacts := r.artifacts.Snapshot()
	if artifacts.Model == nil {
		return nil, NewModelLoadError(nil, "no model loaded")
	}
	if artifacts.Labels == nil {
		return nil, NewDataLoadError(nil, "no label mapping loaded")
	}

	records, err := r.sales.ListSales()
	if err != nil {
		return nil, asDataLoadError(err)
	}
	aggregates := BuildHistoricalAggregates(records)

	targetDate := utils.AddApproximateMonths(r.now(), request.MonthsAhead)
	season := domain.Season(request.CurrentSeason)
	if !season.IsCanonical() {
		logrus.WithField("season", request.CurrentSeason).
			Warn("Estação desconhecida, todos os multiplicadores sazonais serão 1.0")
	}

	predictions := make([]domain.PredictionResult, 0, len(r.profile.Products()))
	for _, product := range r.profile.Products() {
		prediction, err := r.scoreCandidate(artifacts, aggregates, product, season, targetDate)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, prediction)
	}

	if len(predictions) == 0 {
		return nil, NewValidationError("seasonal profile has no candidate products")
	}

	// Empates mantêm a ordem do catálogo
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].PredictedScore > predictions[j].PredictedScore
	})

	id, err := utils.GeneratePredictionID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID da previsão")
	}

	best := predictions[0]

	return &domain.BestSellerReport{
		ID:              id,
		MonthsAhead:     request.MonthsAhead,
		TargetDate:      targetDate,
		Season:          request.CurrentSeason,
		Best:            best,
		Top3:            predictions[:min(topPredictions, len(predictions))],
		All:             predictions,
		Recommendations: recommendations(best, request.MonthsAhead),
	}, nil
}

func (r *BestSellerRanker) scoreCandidate(
	artifacts Artifacts,
	aggregates *HistoricalAggregates,
	product string,
	season domain.Season,
	targetDate time.Time,
) (domain.PredictionResult, error) {
	factor := r.profile.Factor(product, season)

	history := aggregates.Aggregate(product)

	// Truncamento inteiro, não arredondamento
	adjustedBoxes := int(math.Trunc(history.AvgBoxes * factor))
	adjustedAmount := int(math.Trunc(history.AvgAmount * factor))

	features := make([]float64, FeatureCount)
	features[FeatureProductCode] = placeholderProductCode
	features[FeatureBoxes] = float64(adjustedBoxes)
	features[FeatureMonth] = float64(targetDate.Month())
	features[FeatureYear] = float64(targetDate.Year())

	score, err := artifacts.Model.Score(features)
	if err != nil {
		return domain.PredictionResult{}, asPredictionError(err, product)
	}

	label := artifacts.Labels.Lookup(DecodeScore(score))

	logrus.WithFields(logrus.Fields{
		"based_on":        product,
		"seasonal_factor": factor,
		"samples":         history.Samples,
		"adjusted_boxes":  adjustedBoxes,
		"adjusted_amount": adjustedAmount,
		"score":           score,
		"label":           label,
	}).Debug("Candidato pontuado")

	return domain.PredictionResult{
		Product:        label,
		BasedOn:        product,
		PredictedScore: score,
		EstimatedBoxes: adjustedBoxes,
		SeasonalFactor: factor,
		PredictionDate: targetDate,
	}, nil
}

// DecodeScore arredonda o score contínuo para o código inteiro mais próximo.
// Meios são arredondados para o par (2.5 -> 2, 3.5 -> 4).
func DecodeScore(score float64) int {
	return int(math.RoundToEven(score))
}

func recommendations(best domain.PredictionResult, monthsAhead int) []string {
	recs := make([]string, 0, 2)

	if best.SeasonalFactor > seasonalBoostThreshold {
		recs = append(recs, fmt.Sprintf("📈 Seasonal boost: ×%.1f", best.SeasonalFactor))
	}

	if monthsAhead <= shortTermMonths {
		recs = append(recs, shortTermRecommendation)
	} else {
		recs = append(recs, longTermRecommendation)
	}

	return recs
}

func asDataLoadError(err error) error {
	var forecastErr *ForecastError
	if errors.As(err, &forecastErr) {
		return err
	}
	return NewDataLoadError(err, "sales history")
}

func asPredictionError(err error, subject string) error {
	var forecastErr *ForecastError
	if errors.As(err, &forecastErr) {
		return err
	}
	return NewPredictionError(err, "scoring %s", subject)
}
