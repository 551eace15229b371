package domain

// RankingEntry é o grupo vencedor de um ranking (distribuidor ou produto)
// com a soma de vendas previstas do grupo.
type RankingEntry struct {
	Name           string  `json:"name"`
	PredictedSales float64 `json:"predicted_sales"`
}

// KPISet reúne as métricas resumidas calculadas para um conjunto filtrado.
// Efêmero: recalculado a cada aplicação de filtros.
type KPISet struct {
	TotalPredictedSales float64      `json:"total_predicted_sales"`
	AverageMonthlySales float64      `json:"average_monthly_sales"`
	TopDistributor      RankingEntry `json:"top_distributor"`
	TopProduct          RankingEntry `json:"top_product"`
}

// TimeSeriesPoint é um ponto da série mensal: a chave "<Mês> <Ano>" do
// bucket e a soma das vendas previstas do bucket.
type TimeSeriesPoint struct {
	MonthYear      string  `json:"month_year"`
	PredictedSales float64 `json:"predicted_sales"`
}

// DetailRow é a projeção fixa de colunas da visão detalhada, na ordem de
// exibição esperada pela camada de apresentação.
type DetailRow struct {
	MonthYear      string  `json:"month_year"`
	Distributor    string  `json:"distributor"`
	CustomerName   string  `json:"customer_name"`
	Country        string  `json:"country"`
	Channel        string  `json:"channel"`
	ProductName    string  `json:"product_name"`
	ProductClass   string  `json:"product_class"`
	Quantity       float64 `json:"quantity"`
	Price          float64 `json:"price"`
	PredictedSales float64 `json:"predicted_sales"`
}

// AnalysisResponse é a superfície completa entregue à camada de
// apresentação para uma combinação de filtros.
type AnalysisResponse struct {
	SubmissionID string            `json:"submission_id"`
	Filters      FilterCriteria    `json:"filters"`
	RecordCount  int               `json:"record_count"`
	KPIs         KPISet            `json:"kpis"`
	TimeSeries   []TimeSeriesPoint `json:"time_series"`
	Details      []DetailRow       `json:"details"`
}
