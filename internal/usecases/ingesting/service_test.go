package ingesting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

const validCSV = `Month,Year,Country,Channel,Product Class,Sales Team,Distributor,Customer Name,Product Name,Quantity,Price
January,2021,Germany,Hospital,Analgesics,Delta,Gerresheimer,Klinik Nord,Ibuprofen,120,4.5
February,2021,Poland,Pharmacy,Antibiotics,Alpha,Eisai,Apteka Centrum,Amoxicillin,30,12.75
`

func TestService_Load(t *testing.T) {
	service := NewService()

	t.Run("CSV válido produz as linhas na ordem original", func(t *testing.T) {
		records, err := service.Load(strings.NewReader(validCSV))

		assert.NoError(t, err)
		assert.Len(t, records, 2)

		assert.Equal(t, domain.SalesRecord{
			Month:        "January",
			Year:         2021,
			Country:      "Germany",
			Channel:      "Hospital",
			ProductClass: "Analgesics",
			SalesTeam:    "Delta",
			Distributor:  "Gerresheimer",
			CustomerName: "Klinik Nord",
			ProductName:  "Ibuprofen",
			Quantity:     120,
			Price:        4.5,
		}, records[0])

		assert.Equal(t, "February", records[1].Month)
		assert.Equal(t, 12.75, records[1].Price)
	})

	t.Run("colunas extras são ignoradas", func(t *testing.T) {
		csv := "Extra,Month,Year,Country,Channel,Product Class,Sales Team,Distributor,Customer Name,Product Name,Quantity,Price\n" +
			"x,March,2022,Spain,Hospital,Analgesics,Bravo,Dist,Client,Prod,5,2\n"

		records, err := service.Load(strings.NewReader(csv))

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "March", records[0].Month)
		assert.Equal(t, 2022, records[0].Year)
	})

	t.Run("colunas obrigatórias ausentes resultam em SchemaError", func(t *testing.T) {
		csv := "Month,Year,Country\nJanuary,2021,Germany\n"

		records, err := service.Load(strings.NewReader(csv))

		assert.Nil(t, records)

		var schemaErr *domain.SchemaError
		assert.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.MissingColumns, "Channel")
		assert.Contains(t, schemaErr.MissingColumns, "Price")
		assert.NotContains(t, schemaErr.MissingColumns, "Month")
	})

	t.Run("valor numérico malformado rejeita o dataset", func(t *testing.T) {
		csv := "Month,Year,Country,Channel,Product Class,Sales Team,Distributor,Customer Name,Product Name,Quantity,Price\n" +
			"January,dois mil,Germany,Hospital,Analgesics,Delta,Dist,Client,Prod,5,2\n"

		_, err := service.Load(strings.NewReader(csv))

		var schemaErr *domain.SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("arquivo vazio resulta em SchemaError", func(t *testing.T) {
		_, err := service.Load(strings.NewReader(""))

		var schemaErr *domain.SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("apenas cabeçalho produz dataset vazio sem erro", func(t *testing.T) {
		header := strings.SplitN(validCSV, "\n", 2)[0]

		records, err := service.Load(strings.NewReader(header + "\n"))

		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}
