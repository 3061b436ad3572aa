package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const pageTemplate = "dashboard.html"

type pageError struct {
	Code    string
	Message string
}

type pageData struct {
	Regions       []domain.Region
	Years         []int
	MinTopSellers int
	MaxTopSellers int
	Criteria      domain.FilterCriteria
	Sellers       []string
	ActiveTab     string
	Dashboard     *domain.Dashboard
	Tab           *domain.Tab
	Error         *pageError
}

// query reproduz os filtros atuais para os links de abas e imagens
func (p pageData) query() url.Values {
	values := url.Values{}
	values.Set(paramRegion, string(p.Criteria.Region))
	values.Set(paramAllYears, strconv.FormatBool(p.Criteria.AllYears))
	if !p.Criteria.AllYears && p.Criteria.Year != 0 {
		values.Set(paramYear, strconv.Itoa(p.Criteria.Year))
	}
	for _, seller := range p.Criteria.Sellers {
		values.Add(paramSellers, seller)
	}
	if p.Criteria.TopSellers != 0 {
		values.Set(paramTopSellers, strconv.Itoa(p.Criteria.TopSellers))
	}
	return values
}

func (p pageData) ChartURL(chartID string) string {
	return "/v1/charts/" + url.PathEscape(chartID) + "?" + p.query().Encode()
}

func (p pageData) TabURL(tabID string) string {
	values := p.query()
	values.Set(paramTab, tabID)
	return "/?" + values.Encode()
}

func (p pageData) IsSelected(seller string) bool {
	return slices.Contains(p.Criteria.Sellers, seller)
}

func parseTab(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case charting.TabRevenue, charting.TabSales, charting.TabSellers:
		return value
	}
	return charting.TabRevenue
}

// Page renderiza o painel em HTML: filtros na lateral, abas e duas colunas por aba
func Page(service dashboard.Service, cfg config.Dashboard, templates *template.Template) http.Handler {
	years := make([]int, 0, cfg.MaxYear-cfg.MinYear+1)
	for year := cfg.MinYear; year <= cfg.MaxYear; year++ {
		years = append(years, year)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data := pageData{
			Regions:       domain.Regions,
			Years:         years,
			MinTopSellers: cfg.MinTopSellers,
			MaxTopSellers: cfg.MaxTopSellers,
			Criteria:      domain.FilterCriteria{Region: domain.RegionBrazil, AllYears: true, TopSellers: cfg.DefaultTopSellers},
			ActiveTab:     parseTab(r.URL.Query().Get(paramTab)),
		}

		status := http.StatusOK
		criteria, err := parseCriteria(r)
		if err == nil {
			data.Criteria = criteria
			data.Dashboard, err = service.Render(r.Context(), criteria)
		}

		if err != nil {
			code := dashboard.ErrorCode(err)
			status = apiErrors.StatusFor(code)
			data.Error = &pageError{Code: code, Message: pageErrorMessage(err)}
			logger.WithFields(log.Fields{"code": code, "error": err.Error()}).Warn("page: painel exibido com erro")
		} else {
			data.Criteria = data.Dashboard.Criteria
			data.Sellers = data.Dashboard.Sellers
			for i := range data.Dashboard.Tabs {
				if data.Dashboard.Tabs[i].ID == data.ActiveTab {
					data.Tab = &data.Dashboard.Tabs[i]
				}
			}
		}

		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
			logger.WithError(err).Error("page: falha ao executar o template")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("page: erro ao escrever a página")
		}
	})
}

func pageErrorMessage(err error) string {
	var dashboardErr *dashboard.DashboardError
	switch {
	case errors.As(err, &dashboardErr):
		return dashboardErr.Error()
	case errors.Is(err, domain.ErrFetch):
		return "A API de vendas não respondeu. Tente novamente em instantes."
	case errors.Is(err, domain.ErrParse):
		return "A API de vendas devolveu dados em formato inesperado."
	}
	return "Erro interno no servidor."
}
