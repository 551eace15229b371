package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

func enriched(month string, year int, distributor, product string, predicted float64) domain.EnrichedRecord {
	record := domain.SalesRecord{
		Month:       month,
		Year:        year,
		Distributor: distributor,
		ProductName: product,
	}

	return domain.EnrichedRecord{
		SalesRecord:    record,
		PredictedSales: predicted,
		MonthYear:      record.MonthYearKey(),
	}
}

func TestService_Summarize(t *testing.T) {
	service := NewService()

	t.Run("cenário de referência: totais, média por bucket, ranking e série", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("January", 2021, "A", "Ibuprofen", 100),
			enriched("January", 2021, "B", "Paracetamol", 50),
			enriched("February", 2021, "A", "Ibuprofen", 30),
		}

		kpis, timeSeries, err := service.Summarize(records)

		assert.NoError(t, err)
		assert.Equal(t, 180.0, kpis.TotalPredictedSales)
		// Média das somas por bucket (150 e 30), não média por registro
		assert.Equal(t, 90.0, kpis.AverageMonthlySales)
		assert.Equal(t, domain.RankingEntry{Name: "A", PredictedSales: 130}, kpis.TopDistributor)
		assert.Equal(t, domain.RankingEntry{Name: "Ibuprofen", PredictedSales: 130}, kpis.TopProduct)

		assert.Equal(t, []domain.TimeSeriesPoint{
			{MonthYear: "January 2021", PredictedSales: 150},
			{MonthYear: "February 2021", PredictedSales: 30},
		}, timeSeries)
	})

	t.Run("a série é ordenada cronologicamente, não lexicalmente", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("March", 2021, "A", "P1", 1),
			enriched("January", 2022, "A", "P1", 2),
			enriched("December", 2020, "A", "P1", 3),
		}

		_, timeSeries, err := service.Summarize(records)

		assert.NoError(t, err)
		assert.Equal(t, []string{"December 2020", "March 2021", "January 2022"}, []string{
			timeSeries[0].MonthYear,
			timeSeries[1].MonthYear,
			timeSeries[2].MonthYear,
		})
	})

	t.Run("o total dos KPIs é consistente com a soma da série", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("May", 2023, "X", "P1", 10.25),
			enriched("June", 2023, "Y", "P2", 20.50),
			enriched("May", 2023, "Z", "P3", 5.25),
		}

		kpis, timeSeries, err := service.Summarize(records)

		assert.NoError(t, err)

		var seriesTotal float64
		for _, point := range timeSeries {
			seriesTotal += point.PredictedSales
		}
		assert.Equal(t, kpis.TotalPredictedSales, seriesTotal)
	})

	t.Run("empate no ranking é resolvido pelo menor nome em ordem lexical", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("April", 2022, "Zeta", "Zyrtec", 75),
			enriched("April", 2022, "Acme", "Aspirin", 75),
			enriched("April", 2022, "Mid", "Midol", 10),
		}

		kpis, _, err := service.Summarize(records)

		assert.NoError(t, err)
		assert.Equal(t, domain.RankingEntry{Name: "Acme", PredictedSales: 75}, kpis.TopDistributor)
		assert.Equal(t, domain.RankingEntry{Name: "Aspirin", PredictedSales: 75}, kpis.TopProduct)
	})

	t.Run("zero registros resulta em ErrNoData, não em crash", func(t *testing.T) {
		kpis, timeSeries, err := service.Summarize(nil)

		assert.ErrorIs(t, err, domain.ErrNoData)
		assert.Nil(t, kpis)
		assert.Nil(t, timeSeries)
	})

	t.Run("mês fora do calendário é um ParseError, não descarte silencioso", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("January", 2021, "A", "P1", 10),
			enriched("Januray", 2021, "A", "P1", 10), // typo proposital
		}

		_, _, err := service.Summarize(records)

		var parseErr *domain.ParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "Januray 2021", parseErr.Key)
	})
}
