package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do pipeline de predição (PRED)
	ErrPredictionUnavailable = "PRED_001" // Serviço de predição inacessível
	ErrPredictionService     = "PRED_002" // Serviço de predição respondeu com erro
	ErrPredictionAlignment   = "PRED_003" // Predições desalinhadas com o dataset

	// Erros de dados (DATA)
	ErrDatasetSchema      = "DATA_001" // Colunas obrigatórias ausentes ou malformadas
	ErrPeriodParse        = "DATA_002" // Chave de período fora do calendário
	ErrNoData             = "DATA_003" // Nenhum dado para o filtro atual
	ErrSubmissionNotFound = "DATA_004" // Envio não encontrado ou expirado

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrPredictionUnavailable: http.StatusServiceUnavailable,
	ErrPredictionService:     http.StatusBadGateway,
	ErrPredictionAlignment:   http.StatusBadGateway,
	ErrDatasetSchema:         http.StatusUnprocessableEntity,
	ErrPeriodParse:           http.StatusUnprocessableEntity,
	ErrNoData:                http.StatusUnprocessableEntity,
	ErrSubmissionNotFound:    http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteDomainError traduz os erros estruturados do pipeline para o
// envelope da API. Tudo aqui é falha recuperável do envio corrente.
func WriteDomainError(w http.ResponseWriter, err error) {
	var (
		alignmentErr   *domain.AlignmentError
		schemaErr      *domain.SchemaError
		parseErr       *domain.ParseError
		unavailableErr *domain.ServiceUnavailableError
		serviceErr     *domain.PredictionServiceError
	)

	switch {
	case errors.Is(err, domain.ErrNoData):
		WriteError(w, ErrNoData, "Nenhum dado para o filtro atual", nil)
	case errors.Is(err, domain.ErrSubmissionNotFound):
		WriteError(w, ErrSubmissionNotFound, "Envio não encontrado ou expirado", nil)
	case errors.As(err, &schemaErr):
		WriteError(w, ErrDatasetSchema, "CSV com colunas obrigatórias ausentes ou malformadas", schemaErr.MissingColumns)
	case errors.As(err, &alignmentErr):
		WriteError(w, ErrPredictionAlignment, alignmentErr.Error(), map[string]int{
			"records":     alignmentErr.Records,
			"predictions": alignmentErr.Predictions,
		})
	case errors.As(err, &parseErr):
		WriteError(w, ErrPeriodParse, parseErr.Error(), nil)
	case errors.As(err, &unavailableErr):
		WriteError(w, ErrPredictionUnavailable, "Serviço de predição inacessível", nil)
	case errors.As(err, &serviceErr):
		WriteError(w, ErrPredictionService, "Serviço de predição respondeu com erro", map[string]any{
			"status": serviceErr.StatusCode,
			"body":   serviceErr.Body,
		})
	default:
		WriteError(w, ErrInternalServer, err.Error(), nil)
	}
}
