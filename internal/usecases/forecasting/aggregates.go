package forecasting

import (
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

// Valores usados quando o produto não tem nenhuma venda registrada
const (
	FallbackAvgBoxes  = 100.0
	FallbackAvgAmount = 1000.0
)

type productTotals struct {
	boxes   float64
	amount  float64
	samples int
}

// HistoricalAggregates guarda as médias de caixas e valor por produto
type HistoricalAggregates struct {
	totals map[string]*productTotals
}

// BuildHistoricalAggregates agrega o histórico de vendas por nome de produto
func BuildHistoricalAggregates(records []domain.SalesRecord) *HistoricalAggregates {
	totals := make(map[string]*productTotals)

	for _, record := range records {
		t, exists := totals[record.ProductName]
		if !exists {
			t = &productTotals{}
			totals[record.ProductName] = t
		}

		amount, _ := record.Amount.Float64()
		t.boxes += float64(record.BoxesShipped)
		t.amount += amount
		t.samples++
	}

	return &HistoricalAggregates{totals: totals}
}

// MeanBoxes retorna a média de caixas enviadas.
// O fallback só é aplicado quando não há vendas do produto; uma média
// calculada igual a zero é mantida.
func (h *HistoricalAggregates) MeanBoxes(productName string) float64 {
	t, exists := h.totals[productName]
	if !exists || t.samples == 0 {
		return FallbackAvgBoxes
	}
	return t.boxes / float64(t.samples)
}

// MeanAmount retorna a média do valor vendido, com o mesmo fallback de MeanBoxes
func (h *HistoricalAggregates) MeanAmount(productName string) float64 {
	t, exists := h.totals[productName]
	if !exists || t.samples == 0 {
		return FallbackAvgAmount
	}
	return t.amount / float64(t.samples)
}

// Aggregate retorna o resumo de um produto
func (h *HistoricalAggregates) Aggregate(productName string) domain.HistoricalAggregate {
	samples := 0
	if t, exists := h.totals[productName]; exists {
		samples = t.samples
	}

	return domain.HistoricalAggregate{
		ProductName: productName,
		AvgBoxes:    h.MeanBoxes(productName),
		AvgAmount:   h.MeanAmount(productName),
		Samples:     samples,
	}
}
