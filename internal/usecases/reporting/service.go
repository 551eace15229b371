// Package reporting monta a visão detalhada exibida abaixo dos gráficos:
// projeção fixa de colunas ordenada cronologicamente.
package reporting

import (
	"sort"

	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

type Projector interface {
	// DetailView projeta o subconjunto fixo de colunas e ordena pelo
	// mesmo critério cronológico da série temporal (não pela ordem de
	// upload, nem lexicalmente). Projeção pura, sem agregação.
	DetailView(records []domain.EnrichedRecord) ([]domain.DetailRow, error)
}

type Service struct{}

func NewService() Projector {
	return &Service{}
}

type sortableRow struct {
	key domain.ChronoKey
	row domain.DetailRow
}

func (s *Service) DetailView(records []domain.EnrichedRecord) ([]domain.DetailRow, error) {
	sortable := make([]sortableRow, 0, len(records))

	for _, record := range records {
		key, err := domain.ParseMonthYear(record.MonthYear)
		if err != nil {
			return nil, err
		}

		sortable = append(sortable, sortableRow{key: key, row: domain.DetailRow{
			MonthYear:      record.MonthYear,
			Distributor:    record.Distributor,
			CustomerName:   record.CustomerName,
			Country:        record.Country,
			Channel:        record.Channel,
			ProductName:    record.ProductName,
			ProductClass:   record.ProductClass,
			Quantity:       record.Quantity,
			Price:          record.Price,
			PredictedSales: record.PredictedSales,
		}})
	}

	// Ordenação estável: linhas do mesmo bucket permanecem na ordem de
	// entrada, o que torna a reordenação idempotente.
	sort.SliceStable(sortable, func(i, j int) bool {
		return sortable[i].key.Before(sortable[j].key)
	})

	rows := make([]domain.DetailRow, 0, len(sortable))
	for _, item := range sortable {
		rows = append(rows, item.row)
	}

	return rows, nil
}
