package forecasting

import "github.com/vfg2006/chocolate-forecast-api/internal/domain"

const defaultSeasonalFactor = 1.0

// SeasonalProfile é a tabela fixa de multiplicadores por produto e estação
type SeasonalProfile struct {
	products []string
	factors  map[string]map[domain.Season]float64
}

// DefaultSeasonalProfile retorna o catálogo dos cinco produtos candidatos.
// Primavera e outono não têm multiplicador e resolvem para 1.0.
func DefaultSeasonalProfile() *SeasonalProfile {
	return &SeasonalProfile{
		products: []string{
			domain.DarkChocolate,
			domain.MilkChocolate,
			domain.WhiteChocolate,
			domain.HazelnutChocolate,
			domain.AlmondChocolate,
		},
		factors: map[string]map[domain.Season]float64{
			domain.DarkChocolate:     {domain.Winter: 1.3, domain.Summer: 0.9},
			domain.MilkChocolate:     {domain.Winter: 1.1, domain.Summer: 1.2},
			domain.WhiteChocolate:    {domain.Winter: 1.0, domain.Summer: 1.4},
			domain.HazelnutChocolate: {domain.Winter: 1.2, domain.Summer: 1.0},
			domain.AlmondChocolate:   {domain.Winter: 1.1, domain.Summer: 1.1},
		},
	}
}

// Products retorna os produtos candidatos na ordem do catálogo
func (p *SeasonalProfile) Products() []string {
	return append([]string(nil), p.products...)
}

// Factor é total: pares (produto, estação) ausentes retornam 1.0
func (p *SeasonalProfile) Factor(productName string, season domain.Season) float64 {
	bySeason, exists := p.factors[productName]
	if !exists {
		return defaultSeasonalFactor
	}

	factor, exists := bySeason[season]
	if !exists {
		return defaultSeasonalFactor
	}

	return factor
}
