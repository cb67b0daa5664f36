package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chocolate-forecast-api/internal/domain"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/chocolate-forecast-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetSalesDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSalesInsighter(ctrl)
	mockService.EXPECT().GetSalesDashboard().Return(&domain.SalesDashboard{
		TopProducts: []domain.ProductSalesCount{{ProductName: domain.DarkChocolate, Sales: 4}},
		TopClients:  []domain.ClientRevenue{{Client: "Ana", Amount: decimal.RequireFromString("120.50")}},
		TotalSales:  4,
	}, nil)

	rr := httptest.NewRecorder()
	GetSalesDashboard(mockService).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/sales/dashboard", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"data": {
			"top_products": [{"product": "Dark Chocolate", "sales": 4}],
			"top_clients": [{"sales_person": "Ana", "amount_in_dh": "120.5"}],
			"total_sales": 4
		}
	}`, rr.Body.String())
}

func TestGetSalesDashboard_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSalesInsighter(ctrl)
	mockService.EXPECT().GetSalesDashboard().Return(nil, errors.New("arquivo não encontrado"))

	rr := httptest.NewRecorder()
	GetSalesDashboard(mockService).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/sales/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), apiErrors.ErrDataLoad)
	assert.NotContains(t, rr.Body.String(), "arquivo")
}
