package insighting

import (
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

// SalesInsighter define a interface para obter os dados do painel de vendas
type SalesInsighter interface {
	// GetSalesDashboard retorna as vendas por produto e o montante por vendedor
	GetSalesDashboard() (*domain.SalesDashboard, error)
}
