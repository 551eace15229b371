package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

func enriched(month string, year int, customer string, predicted float64) domain.EnrichedRecord {
	record := domain.SalesRecord{
		Month:        month,
		Year:         year,
		Country:      "Germany",
		Channel:      "Pharmacy",
		ProductClass: "Analgesics",
		Distributor:  "Gerresheimer",
		CustomerName: customer,
		ProductName:  "Ibuprofen",
		Quantity:     10,
		Price:        4.5,
	}

	return domain.EnrichedRecord{
		SalesRecord:    record,
		PredictedSales: predicted,
		MonthYear:      record.MonthYearKey(),
	}
}

func TestService_DetailView(t *testing.T) {
	service := NewService()

	t.Run("projeta o subconjunto fixo de colunas ordenado cronologicamente", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("March", 2021, "Apotheke Mitte", 42),
			enriched("December", 2020, "Klinik Nord", 10),
			enriched("January", 2022, "Apotheke Süd", 7),
		}

		rows, err := service.DetailView(records)

		assert.NoError(t, err)
		assert.Len(t, rows, 3)

		assert.Equal(t, "December 2020", rows[0].MonthYear)
		assert.Equal(t, "March 2021", rows[1].MonthYear)
		assert.Equal(t, "January 2022", rows[2].MonthYear)

		assert.Equal(t, domain.DetailRow{
			MonthYear:      "December 2020",
			Distributor:    "Gerresheimer",
			CustomerName:   "Klinik Nord",
			Country:        "Germany",
			Channel:        "Pharmacy",
			ProductName:    "Ibuprofen",
			ProductClass:   "Analgesics",
			Quantity:       10,
			Price:          4.5,
			PredictedSales: 10,
		}, rows[0])
	})

	t.Run("reordenar uma saída já ordenada é idempotente", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enriched("January", 2021, "B", 2),
			enriched("January", 2021, "A", 1),
			enriched("February", 2021, "C", 3),
		}

		first, err := service.DetailView(records)
		assert.NoError(t, err)

		// Reconstituir registros a partir das linhas projetadas e reprojetar
		reconstructed := make([]domain.EnrichedRecord, 0, len(first))
		for _, row := range first {
			reconstructed = append(reconstructed, domain.EnrichedRecord{
				SalesRecord: domain.SalesRecord{
					Country:      row.Country,
					Channel:      row.Channel,
					ProductClass: row.ProductClass,
					Distributor:  row.Distributor,
					CustomerName: row.CustomerName,
					ProductName:  row.ProductName,
					Quantity:     row.Quantity,
					Price:        row.Price,
				},
				PredictedSales: row.PredictedSales,
				MonthYear:      row.MonthYear,
			})
		}

		second, err := service.DetailView(reconstructed)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("conjunto vazio projeta uma lista vazia sem erro", func(t *testing.T) {
		rows, err := service.DetailView(nil)

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("chave de período inválida interrompe a projeção com ParseError", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			{MonthYear: "Smarch 2021"},
		}

		rows, err := service.DetailView(records)

		assert.Nil(t, rows)

		var parseErr *domain.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
