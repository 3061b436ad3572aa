package domain

import (
	"strconv"
	"strings"
)

// Region é uma das partições geográficas aceitas pela API de vendas
type Region string

const (
	RegionBrazil    Region = "Brasil"
	RegionMidwest   Region = "Centro-Oeste"
	RegionNortheast Region = "Nordeste"
	RegionNorth     Region = "Norte"
	RegionSoutheast Region = "Sudeste"
	RegionSouth     Region = "Sul"
)

// Regions lista as regiões na ordem exibida no filtro. Brasil significa sem filtro.
var Regions = []Region{
	RegionBrazil,
	RegionMidwest,
	RegionNortheast,
	RegionNorth,
	RegionSoutheast,
	RegionSouth,
}

// ParseRegion aceita o nome da região sem diferenciar maiúsculas e minúsculas.
// Vazio equivale a Brasil.
func ParseRegion(value string) (Region, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RegionBrazil, true
	}

	for _, region := range Regions {
		if strings.EqualFold(string(region), value) {
			return region, true
		}
	}

	return "", false
}

// FilterCriteria são os valores dos controles do painel
type FilterCriteria struct {
	Region     Region   `json:"region"`
	AllYears   bool     `json:"all_years"`
	Year       int      `json:"year,omitempty"`
	Sellers    []string `json:"sellers,omitempty"`
	TopSellers int      `json:"top_sellers"`
}

// SalesQuery converte os filtros nos parâmetros enviados à API.
// Região em minúsculas e string vazia para "sem filtro".
func (f FilterCriteria) SalesQuery() SalesQuery {
	query := SalesQuery{}

	if f.Region != "" && f.Region != RegionBrazil {
		query.Region = strings.ToLower(string(f.Region))
	}

	if !f.AllYears && f.Year != 0 {
		query.Year = strconv.Itoa(f.Year)
	}

	return query
}
