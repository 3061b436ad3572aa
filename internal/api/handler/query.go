package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Parâmetros de consulta aceitos pelo painel
const (
	paramRegion     = "region"
	paramAllYears   = "all_years"
	paramYear       = "year"
	paramSellers    = "sellers"
	paramTopSellers = "top_sellers"
	paramTab        = "tab"
	paramFormat     = "format"
)

// parseCriteria lê os filtros da query string. A validação dos limites fica no serviço.
func parseCriteria(r *http.Request) (domain.FilterCriteria, error) {
	query := r.URL.Query()
	criteria := domain.FilterCriteria{AllYears: true}

	region, ok := domain.ParseRegion(query.Get(paramRegion))
	if !ok {
		return criteria, invalidParam(dashboard.ErrInvalidRegion, paramRegion, query.Get(paramRegion))
	}
	criteria.Region = region

	if value := strings.TrimSpace(query.Get(paramAllYears)); value != "" {
		allYears, err := strconv.ParseBool(value)
		if err != nil {
			return criteria, invalidParam(err, paramAllYears, value)
		}
		criteria.AllYears = allYears
	}

	if value := strings.TrimSpace(query.Get(paramYear)); value != "" {
		year, err := strconv.Atoi(value)
		if err != nil {
			return criteria, invalidParam(dashboard.ErrInvalidYear, paramYear, value)
		}
		criteria.Year = year
	}

	criteria.Sellers = parseSellers(query)

	if value := strings.TrimSpace(query.Get(paramTopSellers)); value != "" {
		topSellers, err := strconv.Atoi(value)
		if err != nil {
			return criteria, invalidParam(dashboard.ErrInvalidTopSellers, paramTopSellers, value)
		}
		criteria.TopSellers = topSellers
	}

	return criteria, nil
}

// parseSellers aceita o parâmetro repetido e/ou separado por vírgula, sem duplicatas
func parseSellers(query url.Values) []string {
	var sellers []string
	seen := make(map[string]struct{})

	for _, value := range query[paramSellers] {
		for _, seller := range strings.Split(value, ",") {
			seller = strings.TrimSpace(seller)
			if seller == "" {
				continue
			}
			if _, ok := seen[seller]; ok {
				continue
			}
			seen[seller] = struct{}{}
			sellers = append(sellers, seller)
		}
	}

	return sellers
}

func invalidParam(err error, param, value string) error {
	return dashboard.NewDashboardError(err, apiErrors.ErrInvalidFormat, fmt.Sprintf("parâmetro %s inválido: %q", param, value))
}
