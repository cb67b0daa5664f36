package handler

import (
	"net/http"

	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/insighting"
	"github.com/vfg2006/chocolate-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/chocolate-forecast-api/pkg/log"
)

// GetSalesDashboard retorna os dados agregados do painel de vendas
func GetSalesDashboard(service insighting.SalesInsighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.GetSalesDashboard()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao calcular painel de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDataLoad, "Unable to read sales history", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status": "success",
			"data":   dashboard,
		})
	}
}
