package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/chocolate-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/chocolate-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta com o status informado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeForecastError converte os erros da previsão em erros de API.
// Os códigos da previsão coincidem com os expostos pela API.
func writeForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if !errors.As(err, &forecastErr) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Unexpected error", nil)
		return
	}

	apiErrors.WriteError(w, forecastErr.Code, forecastErr.Err.Error(), forecastErr.Details)
}

// decodeBody lê o corpo JSON da requisição
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return errEmptyBody
	}
	return json.NewDecoder(r.Body).Decode(target)
}

var errEmptyBody = errors.New("request body is required")

// writeDecodeError responde VAL_002 para corpo ausente e VAL_003 para JSON inválido
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errEmptyBody) {
		apiErrors.WriteFromError(w, err, apiErrors.ErrMissingRequiredData)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body: "+err.Error(), nil)
}

// writeMissingFields responde VAL_002 listando os campos obrigatórios ausentes
func writeMissingFields(w http.ResponseWriter, missing []string) {
	apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required fields", missing)
}
