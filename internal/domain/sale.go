package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord representa uma linha do histórico de vendas
type SalesRecord struct {
	Client       string          `json:"client"`
	ProductName  string          `json:"product"`
	Date         *time.Time      `json:"date,omitempty"`
	Amount       decimal.Decimal `json:"amount_in_dh"`
	BoxesShipped int             `json:"boxes_shipped"`
}

// HistoricalAggregate resume as vendas de um produto
type HistoricalAggregate struct {
	ProductName string  `json:"product_name"`
	AvgBoxes    float64 `json:"avg_boxes"`
	AvgAmount   float64 `json:"avg_amount"`
	Samples     int     `json:"samples"`
}

// ProductSalesCount é o número de vendas registradas para um produto
type ProductSalesCount struct {
	ProductName string `json:"product"`
	Sales       int    `json:"sales"`
}

// ClientRevenue é o montante total vendido para um cliente
type ClientRevenue struct {
	Client string          `json:"sales_person"`
	Amount decimal.Decimal `json:"amount_in_dh"`
}

// SalesDashboard contém os dados usados pelos gráficos do painel
type SalesDashboard struct {
	TopProducts []ProductSalesCount `json:"top_products"`
	TopClients  []ClientRevenue     `json:"top_clients"`
	TotalSales  int                 `json:"total_sales"`
}
