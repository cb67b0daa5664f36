package insighting

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chocolate-forecast-api/infrastructure/repository"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
)

const (
	TopProductsLimit = 20
	TopClientsLimit  = 15
)

type Service struct {
	salesRepo repository.SalesRepository
}

func NewService(salesRepo repository.SalesRepository) SalesInsighter {
	return &Service{
		salesRepo: salesRepo,
	}
}

func (s *Service) GetSalesDashboard() (*domain.SalesDashboard, error) {
	records, err := s.salesRepo.ListSales()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de vendas: %w", err)
	}

	dashboard := &domain.SalesDashboard{
		TopProducts: topProducts(records, TopProductsLimit),
		TopClients:  topClients(records, TopClientsLimit),
		TotalSales:  len(records),
	}

	logrus.WithFields(logrus.Fields{
		"total_sales": dashboard.TotalSales,
		"products":    len(dashboard.TopProducts),
		"clients":     len(dashboard.TopClients),
	}).Debug("Painel de vendas calculado")

	return dashboard, nil
}

// topProducts conta as vendas por produto, em ordem decrescente
func topProducts(records []domain.SalesRecord, limit int) []domain.ProductSalesCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, record := range records {
		if _, exists := counts[record.ProductName]; !exists {
			order = append(order, record.ProductName)
		}
		counts[record.ProductName]++
	}

	result := make([]domain.ProductSalesCount, 0, len(order))
	for _, product := range order {
		result = append(result, domain.ProductSalesCount{ProductName: product, Sales: counts[product]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sales > result[j].Sales
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// topClients soma o montante por vendedor, em ordem decrescente
func topClients(records []domain.SalesRecord, limit int) []domain.ClientRevenue {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, record := range records {
		if record.Client == "" {
			continue
		}
		total, exists := totals[record.Client]
		if !exists {
			order = append(order, record.Client)
		}
		totals[record.Client] = total.Add(record.Amount)
	}

	result := make([]domain.ClientRevenue, 0, len(order))
	for _, client := range order {
		result = append(result, domain.ClientRevenue{Client: client, Amount: totals[client]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
