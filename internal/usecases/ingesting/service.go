// Package ingesting carrega o CSV de vendas enviado pelo usuário e o
// converte nas linhas do domínio, validando o esquema antes de qualquer
// chamada de rede.
package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-prediction-api/internal/domain"
)

// Colunas obrigatórias do dataset, com os nomes exatos do cabeçalho.
// Colunas adicionais são ignoradas.
const (
	columnMonth        = "Month"
	columnYear         = "Year"
	columnCountry      = "Country"
	columnChannel      = "Channel"
	columnProductClass = "Product Class"
	columnSalesTeam    = "Sales Team"
	columnDistributor  = "Distributor"
	columnCustomerName = "Customer Name"
	columnProductName  = "Product Name"
	columnQuantity     = "Quantity"
	columnPrice        = "Price"
)

var requiredColumns = []string{
	columnMonth,
	columnYear,
	columnCountry,
	columnChannel,
	columnProductClass,
	columnSalesTeam,
	columnDistributor,
	columnCustomerName,
	columnProductName,
	columnQuantity,
	columnPrice,
}

type Loader interface {
	// Load lê o CSV completo e retorna as linhas na ordem original.
	Load(r io.Reader) ([]domain.SalesRecord, error)
}

type Service struct{}

func NewService() Loader {
	return &Service{}
}

func (s *Service) Load(r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &domain.SchemaError{MissingColumns: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do CSV: %w", err)
	}

	indexByColumn, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler a linha %d do CSV: %w", line+1, err)
		}

		line++

		record, err := parseRow(row, indexByColumn, line)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// mapColumns resolve a posição de cada coluna obrigatória no cabeçalho.
func mapColumns(header []string) (map[string]int, error) {
	indexByColumn := make(map[string]int, len(header))
	for i, name := range header {
		indexByColumn[strings.TrimSpace(name)] = i
	}

	missing := make([]string, 0)
	for _, column := range requiredColumns {
		if _, ok := indexByColumn[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &domain.SchemaError{MissingColumns: missing}
	}

	return indexByColumn, nil
}

func parseRow(row []string, indexByColumn map[string]int, line int) (domain.SalesRecord, error) {
	field := func(column string) string {
		idx := indexByColumn[column]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	year, err := strconv.Atoi(strings.TrimSpace(field(columnYear)))
	if err != nil {
		return domain.SalesRecord{}, &domain.SchemaError{
			MissingColumns: []string{fmt.Sprintf("%s (linha %d: %q)", columnYear, line, field(columnYear))},
		}
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(field(columnQuantity)), 64)
	if err != nil {
		return domain.SalesRecord{}, &domain.SchemaError{
			MissingColumns: []string{fmt.Sprintf("%s (linha %d: %q)", columnQuantity, line, field(columnQuantity))},
		}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(field(columnPrice)), 64)
	if err != nil {
		return domain.SalesRecord{}, &domain.SchemaError{
			MissingColumns: []string{fmt.Sprintf("%s (linha %d: %q)", columnPrice, line, field(columnPrice))},
		}
	}

	return domain.SalesRecord{
		Month:        strings.TrimSpace(field(columnMonth)),
		Year:         year,
		Country:      field(columnCountry),
		Channel:      field(columnChannel),
		ProductClass: field(columnProductClass),
		SalesTeam:    field(columnSalesTeam),
		Distributor:  field(columnDistributor),
		CustomerName: field(columnCustomerName),
		ProductName:  field(columnProductName),
		Quantity:     quantity,
		Price:        price,
	}, nil
}
