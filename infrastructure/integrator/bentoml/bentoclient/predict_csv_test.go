package bentoclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-prediction-api/internal/config"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		BentoML: config.BentoML{
			URL:            url,
			PredictPath:    "/predict_csv",
			TimeoutSeconds: 5,
		},
	}
}

func TestBentoClient_PredictCSV(t *testing.T) {
	csvPayload := []byte("Month,Year\nJanuary,2021\nFebruary,2021\n")

	t.Run("envia o CSV como multipart e decodifica o array de predições", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/predict_csv", r.URL.Path)

			file, header, err := r.FormFile("csv")
			assert.NoError(t, err)
			defer file.Close()

			assert.Equal(t, "sales.csv", header.Filename)

			content, err := io.ReadAll(file)
			assert.NoError(t, err)
			assert.Equal(t, csvPayload, content)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[120.5, 33.0]`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		predictions, err := client.PredictCSV(PredictCSVParams{
			Filename: "sales.csv",
			CSV:      csvPayload,
			RowCount: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, PredictCSVResponse{120.5, 33.0}, predictions)
	})

	t.Run("status de erro vira PredictionServiceError com status e corpo", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("model not loaded"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		_, err := client.PredictCSV(PredictCSVParams{Filename: "sales.csv", CSV: csvPayload, RowCount: 2})

		var serviceErr *domain.PredictionServiceError
		assert.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, http.StatusInternalServerError, serviceErr.StatusCode)
		assert.Equal(t, "model not loaded", serviceErr.Body)
	})

	t.Run("quantidade de predições diferente das linhas é AlignmentError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[1.0, 2.0, 3.0]`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		_, err := client.PredictCSV(PredictCSVParams{Filename: "sales.csv", CSV: csvPayload, RowCount: 2})

		var alignmentErr *domain.AlignmentError
		assert.ErrorAs(t, err, &alignmentErr)
		assert.Equal(t, 2, alignmentErr.Records)
		assert.Equal(t, 3, alignmentErr.Predictions)
	})

	t.Run("resposta que não é um array numérico é AlignmentError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"detail": "unexpected"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		_, err := client.PredictCSV(PredictCSVParams{Filename: "sales.csv", CSV: csvPayload, RowCount: 2})

		var alignmentErr *domain.AlignmentError
		assert.ErrorAs(t, err, &alignmentErr)
	})

	t.Run("endpoint inacessível é ServiceUnavailableError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // derruba o endpoint antes da chamada

		client := NewClient(testConfig(server.URL))

		_, err := client.PredictCSV(PredictCSVParams{Filename: "sales.csv", CSV: csvPayload, RowCount: 2})

		var unavailableErr *domain.ServiceUnavailableError
		assert.ErrorAs(t, err, &unavailableErr)
	})
}
