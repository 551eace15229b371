// Package filtering aplica os filtros categóricos do dashboard sobre o
// dataset enriquecido e descobre os valores disponíveis por dimensão.
package filtering

import (
	"sort"

	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

type Filterer interface {
	// Apply retorna a subsequência de registros que satisfaz todas as
	// restrições não-curinga, na ordem relativa original. Resultado vazio
	// é um desfecho válido, não um erro.
	Apply(records []domain.EnrichedRecord, criteria domain.FilterCriteria) []domain.EnrichedRecord

	// Options monta os valores de seleção por dimensão: "All" seguido dos
	// valores distintos observados, em ordem lexical.
	Options(records []domain.EnrichedRecord) domain.FilterOptions
}

type Service struct{}

func NewService() Filterer {
	return &Service{}
}

func (s *Service) Apply(records []domain.EnrichedRecord, criteria domain.FilterCriteria) []domain.EnrichedRecord {
	filtered := make([]domain.EnrichedRecord, 0, len(records))
	for _, record := range records {
		if criteria.Matches(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func (s *Service) Options(records []domain.EnrichedRecord) domain.FilterOptions {
	countries := make(map[string]struct{})
	channels := make(map[string]struct{})
	productClasses := make(map[string]struct{})
	salesTeams := make(map[string]struct{})

	for _, record := range records {
		countries[record.Country] = struct{}{}
		channels[record.Channel] = struct{}{}
		productClasses[record.ProductClass] = struct{}{}
		salesTeams[record.SalesTeam] = struct{}{}
	}

	return domain.FilterOptions{
		Countries:      optionValues(countries),
		Channels:       optionValues(channels),
		ProductClasses: optionValues(productClasses),
		SalesTeams:     optionValues(salesTeams),
	}
}

func optionValues(distinct map[string]struct{}) []string {
	values := make([]string, 0, len(distinct))
	for value := range distinct {
		values = append(values, value)
	}
	sort.Strings(values)

	return append([]string{domain.FilterWildcard}, values...)
}
