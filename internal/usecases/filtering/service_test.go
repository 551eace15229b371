package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

func buildRecords() []domain.EnrichedRecord {
	return []domain.EnrichedRecord{
		{SalesRecord: domain.SalesRecord{Country: "Germany", Channel: "Hospital", ProductClass: "Analgesics", SalesTeam: "Delta"}},
		{SalesRecord: domain.SalesRecord{Country: "Germany", Channel: "Pharmacy", ProductClass: "Antibiotics", SalesTeam: "Alpha"}},
		{SalesRecord: domain.SalesRecord{Country: "Poland", Channel: "Hospital", ProductClass: "Analgesics", SalesTeam: "Alpha"}},
		{SalesRecord: domain.SalesRecord{Country: "Poland", Channel: "Pharmacy", ProductClass: "Mood Stabilizers", SalesTeam: "Bravo"}},
	}
}

func TestService_Apply(t *testing.T) {
	service := NewService()
	records := buildRecords()

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		expected []int // índices esperados em records, na ordem original
	}{
		{
			name:     "todos curinga retorna o dataset inteiro na mesma ordem",
			criteria: domain.FilterCriteria{Country: "All", Channel: "All", ProductClass: "All", SalesTeam: "All"},
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "criterios vazios equivalem ao curinga",
			criteria: domain.FilterCriteria{},
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "filtro por uma dimensão",
			criteria: domain.FilterCriteria{Country: "Germany"},
			expected: []int{0, 1},
		},
		{
			name:     "dimensões combinam com AND",
			criteria: domain.FilterCriteria{Country: "Poland", Channel: "Hospital"},
			expected: []int{2},
		},
		{
			name:     "combinação sem correspondência retorna vazio sem erro",
			criteria: domain.FilterCriteria{Country: "Germany", SalesTeam: "Bravo"},
			expected: []int{},
		},
		{
			name:     "a comparação é sensível a maiúsculas",
			criteria: domain.FilterCriteria{Country: "germany"},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := service.Apply(records, tt.criteria)

			expected := make([]domain.EnrichedRecord, 0, len(tt.expected))
			for _, idx := range tt.expected {
				expected = append(expected, records[idx])
			}

			assert.Equal(t, expected, filtered)

			// Todo registro retornado satisfaz todas as restrições
			for _, record := range filtered {
				assert.True(t, tt.criteria.Matches(record))
			}
		})
	}
}

func TestService_Options(t *testing.T) {
	service := NewService()

	t.Run("cada dimensão traz All seguido dos valores distintos em ordem lexical", func(t *testing.T) {
		options := service.Options(buildRecords())

		assert.Equal(t, []string{"All", "Germany", "Poland"}, options.Countries)
		assert.Equal(t, []string{"All", "Hospital", "Pharmacy"}, options.Channels)
		assert.Equal(t, []string{"All", "Analgesics", "Antibiotics", "Mood Stabilizers"}, options.ProductClasses)
		assert.Equal(t, []string{"All", "Alpha", "Bravo", "Delta"}, options.SalesTeams)
	})

	t.Run("dataset vazio produz apenas o curinga", func(t *testing.T) {
		options := service.Options(nil)

		assert.Equal(t, []string{"All"}, options.Countries)
		assert.Equal(t, []string{"All"}, options.Channels)
		assert.Equal(t, []string{"All"}, options.ProductClasses)
		assert.Equal(t, []string{"All"}, options.SalesTeams)
	})
}
