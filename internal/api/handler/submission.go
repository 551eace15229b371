package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/sales-prediction-api/internal/config"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-prediction-api/pkg/apiErrors"
	"github.com/vfg2006/sales-prediction-api/pkg/log"
)

// CreateSubmission recebe o CSV de vendas via multipart, executa o
// pipeline de predição/enriquecimento e retorna o recibo do envio.
func CreateSubmission(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		maxSize := cfg.Upload.MaxSizeBytes
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)

		if err := r.ParseMultipartForm(maxSize); err != nil {
			logger.WithError(err).Warn("submissions: invalid multipart payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido ou acima do limite", nil)
			return
		}

		file, header, err := r.FormFile("csv")
		if err != nil {
			logger.WithError(err).Warn("submissions: missing csv form field")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo de arquivo \"csv\" ausente", nil)
			return
		}
		defer file.Close()

		payload, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Error("submissions: error reading uploaded file")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     len(payload),
		}).Info("submissions: processing uploaded dataset")

		receipt, err := service.CreateSubmission(r.Context(), header.Filename, payload)
		if err != nil {
			logger.WithError(err).WithField("filename", header.Filename).
				Error("submissions: pipeline failed for uploaded dataset")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"submission_id": receipt.ID,
			"row_count":     receipt.RowCount,
		}).Info("submissions: dataset enriched and stored")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logger.WithError(err).Error("submissions: error encoding response")
		}
	})
}
