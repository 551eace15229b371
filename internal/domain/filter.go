package domain

// FilterWildcard é o valor sentinela que indica ausência de restrição em
// uma dimensão. É o mesmo rótulo exibido na seleção de filtros.
const FilterWildcard = "All"

// FilterCriteria é o conjunto de restrições de igualdade por dimensão
// categórica. As dimensões são independentes e combinadas com AND; uma
// dimensão vazia ou igual a FilterWildcard não restringe nada.
type FilterCriteria struct {
	Country      string `json:"country"`
	Channel      string `json:"channel"`
	ProductClass string `json:"product_class"`
	SalesTeam    string `json:"sales_team"`
}

// Matches informa se o registro satisfaz todas as restrições não-curinga.
// A comparação é exata e sensível a maiúsculas.
func (c FilterCriteria) Matches(record EnrichedRecord) bool {
	return matchesDimension(c.Country, record.Country) &&
		matchesDimension(c.Channel, record.Channel) &&
		matchesDimension(c.ProductClass, record.ProductClass) &&
		matchesDimension(c.SalesTeam, record.SalesTeam)
}

func matchesDimension(criterion, value string) bool {
	if criterion == "" || criterion == FilterWildcard {
		return true
	}
	return criterion == value
}

// FilterOptions são os valores disponíveis por dimensão para montagem da
// seleção de filtros: "All" seguido dos valores distintos observados no
// dataset, em ordem lexical.
type FilterOptions struct {
	Countries      []string `json:"countries"`
	Channels       []string `json:"channels"`
	ProductClasses []string `json:"product_classes"`
	SalesTeams     []string `json:"sales_teams"`
}
