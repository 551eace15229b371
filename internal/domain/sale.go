// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "fmt"

// SalesRecord representa uma linha do dataset de vendas enviado pelo usuário.
// Os registros são imutáveis após o carregamento e identificados pela posição.
type SalesRecord struct {
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	Country      string  `json:"country"`
	Channel      string  `json:"channel"`
	ProductClass string  `json:"product_class"`
	SalesTeam    string  `json:"sales_team"`
	Distributor  string  `json:"distributor"`
	CustomerName string  `json:"customer_name"`
	ProductName  string  `json:"product_name"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
}

// MonthYearKey deriva a chave do bucket temporal no formato "<Mês> <Ano>",
// exatamente a forma textual consumida pela ordenação cronológica.
func (r SalesRecord) MonthYearKey() string {
	return fmt.Sprintf("%s %d", r.Month, r.Year)
}

// EnrichedRecord é um SalesRecord acrescido do valor previsto pelo serviço
// de predição e da chave do bucket mensal. Um para um com as linhas de
// entrada, na mesma ordem.
type EnrichedRecord struct {
	SalesRecord

	PredictedSales float64 `json:"predicted_sales"`
	MonthYear      string  `json:"month_year"`
}
