// Package enriching anexa as predições às linhas do dataset e deriva a
// chave do bucket mensal consumida pela agregação.
package enriching

import (
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

type Merger interface {
	// Merge combina linhas e predições um-para-um, preservando a ordem.
	Merge(records []domain.SalesRecord, predictions []float64) ([]domain.EnrichedRecord, error)
}

type Service struct{}

func NewService() Merger {
	return &Service{}
}

// Merge falha com AlignmentError quando os comprimentos divergem: truncar
// para o menor produziria análises silenciosamente erradas.
func (s *Service) Merge(records []domain.SalesRecord, predictions []float64) ([]domain.EnrichedRecord, error) {
	if len(records) != len(predictions) {
		return nil, &domain.AlignmentError{
			Records:     len(records),
			Predictions: len(predictions),
		}
	}

	enriched := make([]domain.EnrichedRecord, 0, len(records))
	for i, record := range records {
		enriched = append(enriched, domain.EnrichedRecord{
			SalesRecord:    record,
			PredictedSales: predictions[i],
			MonthYear:      record.MonthYearKey(),
		})
	}

	return enriched, nil
}
