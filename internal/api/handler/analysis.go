package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-prediction-api/pkg/apiErrors"
	"github.com/vfg2006/sales-prediction-api/pkg/log"
)

// GetSubmissionFilters retorna os valores de seleção por dimensão
// descobertos no dataset do envio.
func GetSubmissionFilters(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("submission_id", id).Info("filters: fetching filter options")

		options, err := service.FilterOptions(id)
		if err != nil {
			logger.WithError(err).WithField("submission_id", id).Warn("filters: error fetching filter options")
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(options); err != nil {
			logger.WithError(err).Error("filters: error encoding response")
		}
	})
}

// GetSubmissionAnalysis aplica os filtros da query string sobre o dataset
// enriquecido do envio e retorna KPIs, série temporal e visão detalhada.
// A refiltragem nunca reinvoca o serviço de predição.
func GetSubmissionAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		// Parâmetro ausente equivale ao curinga "All".
		criteria := domain.FilterCriteria{
			Country:      r.URL.Query().Get("country"),
			Channel:      r.URL.Query().Get("channel"),
			ProductClass: r.URL.Query().Get("product_class"),
			SalesTeam:    r.URL.Query().Get("sales_team"),
		}

		logger.WithFields(log.Fields{
			"submission_id": id,
			"country":       criteria.Country,
			"channel":       criteria.Channel,
			"product_class": criteria.ProductClass,
			"sales_team":    criteria.SalesTeam,
		}).Info("analysis: computing analytics for filter combination")

		analysis, err := service.Analyze(id, criteria)
		if err != nil {
			logger.WithError(err).WithField("submission_id", id).Warn("analysis: error computing analytics")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"submission_id": id,
			"record_count":  analysis.RecordCount,
			"buckets":       len(analysis.TimeSeries),
		}).Info("analysis: analytics computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			logger.WithError(err).Error("analysis: error encoding response")
		}
	})
}
