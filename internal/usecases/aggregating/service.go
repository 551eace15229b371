// Package aggregating calcula os KPIs e a série temporal mensal sobre o
// dataset filtrado.
package aggregating

import (
	"sort"

	"github.com/vfg2006/sales-prediction-api/internal/domain"
	"github.com/vfg2006/sales-prediction-api/pkg/utils"
)

type Summarizer interface {
	// Summarize calcula o conjunto de KPIs e a série mensal em ordem
	// cronológica para o conjunto filtrado. Zero registros resulta em
	// ErrNoData; chave de período não reconhecida resulta em ParseError.
	Summarize(records []domain.EnrichedRecord) (*domain.KPISet, []domain.TimeSeriesPoint, error)
}

type Service struct{}

func NewService() Summarizer {
	return &Service{}
}

func (s *Service) Summarize(records []domain.EnrichedRecord) (*domain.KPISet, []domain.TimeSeriesPoint, error) {
	if len(records) == 0 {
		// A média mensal e os rankings não são definidos sobre zero
		// registros; reportar em vez de quebrar.
		return nil, nil, domain.ErrNoData
	}

	timeSeries, err := monthlySeries(records)
	if err != nil {
		return nil, nil, err
	}

	var total float64
	for _, record := range records {
		total += record.PredictedSales
	}

	// Média aritmética das somas por bucket: um bucket com muitas linhas
	// pequenas pesa o mesmo que um bucket com uma linha grande.
	var bucketTotal float64
	for _, point := range timeSeries {
		bucketTotal += point.PredictedSales
	}
	average := bucketTotal / float64(len(timeSeries))

	topDistributor := topGroup(records, func(r domain.EnrichedRecord) string { return r.Distributor })
	topProduct := topGroup(records, func(r domain.EnrichedRecord) string { return r.ProductName })

	kpis := &domain.KPISet{
		TotalPredictedSales: total,
		AverageMonthlySales: utils.RoundWithTwoDecimalPlace(average),
		TopDistributor:      topDistributor,
		TopProduct:          topProduct,
	}

	return kpis, timeSeries, nil
}

// monthlySeries agrupa os registros por chave "<Mês> <Ano>" e ordena os
// buckets pela chave cronológica (ano, índice do mês), não lexicalmente.
func monthlySeries(records []domain.EnrichedRecord) ([]domain.TimeSeriesPoint, error) {
	sums := make(map[string]float64)
	chronoKeys := make(map[string]domain.ChronoKey)

	for _, record := range records {
		if _, ok := chronoKeys[record.MonthYear]; !ok {
			key, err := domain.ParseMonthYear(record.MonthYear)
			if err != nil {
				return nil, err
			}
			chronoKeys[record.MonthYear] = key
		}
		sums[record.MonthYear] += record.PredictedSales
	}

	series := make([]domain.TimeSeriesPoint, 0, len(sums))
	for monthYear, sum := range sums {
		series = append(series, domain.TimeSeriesPoint{
			MonthYear:      monthYear,
			PredictedSales: sum,
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return chronoKeys[series[i].MonthYear].Before(chronoKeys[series[j].MonthYear])
	})

	return series, nil
}

// topGroup soma as vendas previstas por grupo e elege o vencedor. Critério
// de desempate determinístico: maior soma e, em caso de empate, o menor
// nome em ordem lexical.
func topGroup(records []domain.EnrichedRecord, groupKey func(domain.EnrichedRecord) string) domain.RankingEntry {
	sums := make(map[string]float64)
	for _, record := range records {
		sums[groupKey(record)] += record.PredictedSales
	}

	var top domain.RankingEntry
	first := true
	for name, sum := range sums {
		if first || sum > top.PredictedSales || (sum == top.PredictedSales && name < top.Name) {
			top = domain.RankingEntry{Name: name, PredictedSales: sum}
			first = false
		}
	}

	top.PredictedSales = utils.RoundWithTwoDecimalPlace(top.PredictedSales)
	return top
}
