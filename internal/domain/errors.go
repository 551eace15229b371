package domain

import (
	"errors"
	"fmt"
)

// Erros sentinela do pipeline. Todos são falhas estruturadas e
// recuperáveis: nenhum deve derrubar o processo.
var (
	// ErrNoData indica que um KPI ou ranking foi solicitado sobre zero
	// registros. É um resultado reportável ("sem dados para o filtro
	// atual"), não uma falha fatal.
	ErrNoData = errors.New("nenhum dado para o filtro atual")

	// ErrSubmissionNotFound indica que o envio referenciado não existe ou
	// já expirou.
	ErrSubmissionNotFound = errors.New("envio não encontrado")
)

// AlignmentError indica que a quantidade de predições retornada pelo
// serviço difere da quantidade de linhas do dataset. O envio é rejeitado
// por inteiro; nunca truncamos para o menor comprimento.
type AlignmentError struct {
	Records     int
	Predictions int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("predições desalinhadas com o dataset: %d linhas, %d predições", e.Records, e.Predictions)
}

// SchemaError indica colunas obrigatórias ausentes no CSV de entrada. O
// dataset é rejeitado antes de qualquer chamada de rede.
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("colunas obrigatórias ausentes no CSV: %v", e.MissingColumns)
}

// ParseError indica uma chave de bucket mensal que não corresponde a um
// dos doze meses do calendário.
type ParseError struct {
	Key string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chave de período inválida: %q", e.Key)
}

// ServiceUnavailableError indica falha de transporte ao alcançar o
// serviço de predição (endpoint inacessível, timeout).
type ServiceUnavailableError struct {
	Err error
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("serviço de predição inacessível: %v", e.Err)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Err
}

// PredictionServiceError indica que o serviço de predição respondeu com um
// status de erro. Carrega o status e o corpo para diagnóstico.
type PredictionServiceError struct {
	StatusCode int
	Body       string
}

func (e *PredictionServiceError) Error() string {
	return fmt.Sprintf("serviço de predição retornou status %d: %s", e.StatusCode, e.Body)
}
