package bentoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"

	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

type PredictCSVParams struct {
	Ctx      context.Context
	Filename string
	CSV      []byte
	// RowCount é a quantidade de linhas de dados do CSV; a resposta do
	// serviço precisa ter exatamente este comprimento.
	RowCount int
}

type PredictCSVResponse []float64

// PredictCSV envia o dataset como arquivo multipart para o endpoint de
// predição e decodifica o array JSON de valores previstos. A chamada é
// única e bloqueante; não há resultados parciais nem retry nesta camada.
func (c *BentoClient) PredictCSV(params PredictCSVParams) (PredictCSVResponse, error) {
	ctx := params.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.BentoML.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.BentoML.PredictPath)

	// Montar o corpo multipart com o CSV no campo "csv".
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("csv", params.Filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o corpo multipart: %w", err)
	}
	if _, err := part.Write(params.CSV); err != nil {
		return nil, fmt.Errorf("erro ao escrever o CSV no corpo multipart: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o corpo multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Falha de transporte: endpoint inacessível ou timeout.
		return nil, &domain.ServiceUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.PredictionServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(detail),
		}
	}

	var predictions PredictCSVResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		// Resposta que não é um array numérico não tem como ser alinhada
		// posicionalmente com o dataset.
		return nil, &domain.AlignmentError{Records: params.RowCount, Predictions: 0}
	}

	if len(predictions) != params.RowCount {
		return nil, &domain.AlignmentError{Records: params.RowCount, Predictions: len(predictions)}
	}

	return predictions, nil
}
