package forecasting

import (
	"fmt"

	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

const (
	DefaultMonthsAhead = 3
	DefaultSeason      = string(domain.Summer)
)

// Summarizer resume a previsão padrão
type Summarizer interface {
	Summary() domain.PredictionSummary
}

// PredictionFacade aplica os valores padrão ao ranking e resume o resultado em uma frase
type PredictionFacade struct {
	ranker      Ranker
	monthsAhead int
	season      string
}

// NewPredictionFacade cria a fachada com os padrões (3 meses, verão)
func NewPredictionFacade(ranker Ranker) *PredictionFacade {
	return &PredictionFacade{
		ranker:      ranker,
		monthsAhead: DefaultMonthsAhead,
		season:      DefaultSeason,
	}
}

// WithDefaults substitui os padrões do pedido
func (f *PredictionFacade) WithDefaults(monthsAhead int, season string) *PredictionFacade {
	return &PredictionFacade{
		ranker:      f.ranker,
		monthsAhead: monthsAhead,
		season:      season,
	}
}

// Summary executa o ranking padrão e monta o resumo
func (f *PredictionFacade) Summary() domain.PredictionSummary {
	report, err := f.ranker.Rank(domain.PredictionRequest{
		MonthsAhead:   f.monthsAhead,
		CurrentSeason: f.season,
	})
	if err != nil {
		return domain.PredictionSummary{
			Prediction: fmt.Sprintf("Prediction error: %s", err),
			Status:     domain.StatusError,
		}
	}

	best := report.Best
	return domain.PredictionSummary{
		Prediction: fmt.Sprintf("🏆 Best predicted product: %s with score %.2f", best.Product, best.PredictedScore),
		Details:    fmt.Sprintf("Estimate: %d boxes in %s", best.EstimatedBoxes, report.FormattedTargetDate()),
		Status:     domain.StatusSuccess,
	}
}

// Summarize retorna o resumo como uma única frase
func (f *PredictionFacade) Summarize() string {
	summary := f.Summary()
	if summary.Details == "" {
		return summary.Prediction
	}
	return summary.Prediction + ". " + summary.Details
}
