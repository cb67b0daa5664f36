package forecasting

import (
	"errors"
	"fmt"
)

// Erros base de cada etapa da previsão
var (
	ErrDataLoad   = errors.New("data load error")
	ErrModelLoad  = errors.New("model load error")
	ErrPrediction = errors.New("prediction error")
	ErrValidation = errors.New("validation error")
)

// Códigos de erro expostos pela API
const (
	CodeValidation = "VAL_001"
	CodeDataLoad   = "DATA_001"
	CodeModelLoad  = "MODEL_001"
	CodePrediction = "PRED_001"
)

// ForecastError é um erro com contexto adicional da previsão
type ForecastError struct {
	Err     error  // Erro base (ErrDataLoad, ErrModelLoad, ...)
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Cause   error  // Erro original, quando existir
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap retorna os erros subjacentes
func (e *ForecastError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newForecastError(err error, code string, cause error, format string, args ...any) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// NewDataLoadError indica falha ao ler o mapeamento de rótulos ou o histórico de vendas
func NewDataLoadError(cause error, format string, args ...any) *ForecastError {
	return newForecastError(ErrDataLoad, CodeDataLoad, cause, format, args...)
}

// NewModelLoadError indica artefato do modelo ausente ou corrompido
func NewModelLoadError(cause error, format string, args ...any) *ForecastError {
	return newForecastError(ErrModelLoad, CodeModelLoad, cause, format, args...)
}

// NewPredictionError indica vetor de features rejeitado pelo modelo
func NewPredictionError(cause error, format string, args ...any) *ForecastError {
	return newForecastError(ErrPrediction, CodePrediction, cause, format, args...)
}

// NewValidationError indica campos do pedido fora do domínio
func NewValidationError(format string, args ...any) *ForecastError {
	return newForecastError(ErrValidation, CodeValidation, nil, format, args...)
}

// ErrorCode extrai o código de API de um erro, ou "" se não for um ForecastError
func ErrorCode(err error) string {
	var forecastErr *ForecastError
	if errors.As(err, &forecastErr) {
		return forecastErr.Code
	}
	return ""
}
