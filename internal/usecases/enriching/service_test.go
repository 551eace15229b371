package enriching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

func TestService_Merge(t *testing.T) {
	service := NewService()

	records := []domain.SalesRecord{
		{Month: "January", Year: 2021, Distributor: "Gerresheimer"},
		{Month: "February", Year: 2021, Distributor: "Eisai"},
		{Month: "December", Year: 2020, Distributor: "Gerresheimer"},
	}

	t.Run("predições alinhadas produzem um registro enriquecido por linha, na mesma ordem", func(t *testing.T) {
		enriched, err := service.Merge(records, []float64{100, 50.5, 30})

		assert.NoError(t, err)
		assert.Len(t, enriched, 3)

		assert.Equal(t, "January 2021", enriched[0].MonthYear)
		assert.Equal(t, 100.0, enriched[0].PredictedSales)
		assert.Equal(t, "Gerresheimer", enriched[0].Distributor)

		assert.Equal(t, "February 2021", enriched[1].MonthYear)
		assert.Equal(t, 50.5, enriched[1].PredictedSales)

		assert.Equal(t, "December 2020", enriched[2].MonthYear)
		assert.Equal(t, 30.0, enriched[2].PredictedSales)
	})

	t.Run("menos predições que linhas é um erro de alinhamento, nunca truncamento", func(t *testing.T) {
		enriched, err := service.Merge(records, []float64{100, 50})

		assert.Nil(t, enriched)

		var alignmentErr *domain.AlignmentError
		assert.ErrorAs(t, err, &alignmentErr)
		assert.Equal(t, 3, alignmentErr.Records)
		assert.Equal(t, 2, alignmentErr.Predictions)
	})

	t.Run("mais predições que linhas também é um erro de alinhamento", func(t *testing.T) {
		_, err := service.Merge(records, []float64{100, 50, 30, 7})

		var alignmentErr *domain.AlignmentError
		assert.ErrorAs(t, err, &alignmentErr)
		assert.Equal(t, 4, alignmentErr.Predictions)
	})

	t.Run("dataset vazio com predições vazias é válido", func(t *testing.T) {
		enriched, err := service.Merge(nil, nil)

		assert.NoError(t, err)
		assert.Empty(t, enriched)
	})

	t.Run("a chave do bucket usa o nome do mês e o ano decimal separados por um espaço", func(t *testing.T) {
		enriched, err := service.Merge(
			[]domain.SalesRecord{{Month: "March", Year: 987}},
			[]float64{1},
		)

		assert.NoError(t, err)
		assert.Equal(t, "March 987", enriched[0].MonthYear)
	})
}
