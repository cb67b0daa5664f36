package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrNotFound         = "RES_001" // Rota inexistente
	ErrMethodNotAllowed = "RES_002" // Método não suportado pela rota

	// Erros de previsão
	ErrDataLoad   = "DATA_001"  // Histórico de vendas ou rótulos ilegíveis
	ErrModelLoad  = "MODEL_001" // Artefato do modelo ausente ou corrompido
	ErrPrediction = "PRED_001"  // Vetor de features rejeitado pelo modelo

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrReloadBusy     = "SRV_002" // Recarga de artefatos já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrDataLoad:            http.StatusInternalServerError,
	ErrModelLoad:           http.StatusServiceUnavailable,
	ErrPrediction:          http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrReloadBusy:          http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Status  string `json:"status"`            // Sempre "error"
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Status:  "error",
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Status:  "error",
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	if code == "" {
		code = ErrInternalServer
	}

	return APIError{
		Status:  "error",
		Code:    code,
		Message: err.Error(),
	}
}

// WriteFromError escreve um erro Go usando o código informado
func WriteFromError(w http.ResponseWriter, err error, code string) {
	apiErr := FromError(err, code)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}
