package domain

import (
	"strconv"
	"strings"
	"time"
)

// monthIndexByName mapeia os doze nomes de mês do calendário para o índice
// cronológico (1-12). Qualquer nome fora desta lista é um erro de parse.
var monthIndexByName = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// ChronoKey é a chave de ordenação cronológica (ano, índice do mês) de um
// bucket mensal, distinta da ordem lexical da string "<Mês> <Ano>".
type ChronoKey struct {
	Year  int
	Month time.Month
}

// Before informa se k antecede other no calendário.
func (k ChronoKey) Before(other ChronoKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// ParseMonthYear converte uma chave "<Mês> <Ano>" na chave cronológica.
// Chaves com mês desconhecido ou ano inválido retornam ParseError; nunca
// são descartadas silenciosamente.
func ParseMonthYear(key string) (ChronoKey, error) {
	name, yearStr, found := strings.Cut(key, " ")
	if !found {
		return ChronoKey{}, &ParseError{Key: key}
	}

	month, ok := monthIndexByName[name]
	if !ok {
		return ChronoKey{}, &ParseError{Key: key}
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return ChronoKey{}, &ParseError{Key: key}
	}

	return ChronoKey{Year: year, Month: month}, nil
}
