package charting

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Identificadores dos gráficos
const (
	ChartRevenueMap        = "mapa_receita"
	ChartRevenueStates     = "receita_estados"
	ChartRevenueMonthly    = "receita_mensal"
	ChartRevenueCategories = "receita_categorias"
	ChartSalesMap          = "mapa_vendas"
	ChartSalesStates       = "vendas_estados"
	ChartSalesMonthly      = "vendas_mensal"
	ChartSalesCategories   = "vendas_categorias"
	ChartSellersRevenue    = "receita_vendedores"
	ChartSellersSales      = "vendas_vendedores"
)

// Identificadores das abas
const (
	TabRevenue = "receita"
	TabSales   = "vendas"
	TabSellers = "vendedores"
)

const (
	revenueTitle = "Receita"
	salesTitle   = "Quantidade de vendas"
	stateTitle   = "Local da compra"
	monthTitle   = "Mês"
)

// ChartIDs lista todos os gráficos na ordem em que aparecem na página
var ChartIDs = []string{
	ChartRevenueMap,
	ChartRevenueStates,
	ChartRevenueMonthly,
	ChartRevenueCategories,
	ChartSalesMap,
	ChartSalesStates,
	ChartSalesMonthly,
	ChartSalesCategories,
	ChartSellersRevenue,
	ChartSellersSales,
}

// Metrics formata os totais exibidos em todas as abas
func Metrics(summaries domain.Summaries) domain.Metrics {
	return domain.Metrics{
		Revenue:         utils.RoundWithTwoDecimalPlace(summaries.TotalRevenue),
		RevenueLabel:    utils.FormatNumber(summaries.TotalRevenue, "R$"),
		SalesCount:      summaries.TotalCount,
		SalesCountLabel: utils.FormatNumber(float64(summaries.TotalCount), ""),
	}
}

// BuildTabs monta as três abas com duas colunas cada
func BuildTabs(summaries domain.Summaries, rankings domain.Rankings, metrics domain.Metrics) []domain.Tab {
	revenueMetric := domain.MetricCallout{Title: revenueTitle, Value: metrics.RevenueLabel}
	salesMetric := domain.MetricCallout{Title: salesTitle, Value: metrics.SalesCountLabel}

	return []domain.Tab{
		{
			ID:    TabRevenue,
			Title: revenueTitle,
			Columns: [2]domain.Column{
				{
					Metric: revenueMetric,
					Charts: []domain.ChartSpec{
						stateMap(ChartRevenueMap, "Receita por estado", summaries.RevenueByState),
						stateBar(ChartRevenueStates, "Top estados (receita)", revenueTitle, rankings.StatesByRevenue),
					},
				},
				{
					Metric: salesMetric,
					Charts: []domain.ChartSpec{
						monthlyLine(ChartRevenueMonthly, "Receita mensal", revenueTitle, summaries.RevenueByMonth),
						categoryBar(ChartRevenueCategories, "Receita por categoria", revenueTitle, summaries.RevenueByCategory),
					},
				},
			},
		},
		{
			ID:    TabSales,
			Title: salesTitle,
			Columns: [2]domain.Column{
				{
					Metric: revenueMetric,
					Charts: []domain.ChartSpec{
						stateMap(ChartSalesMap, "Vendas por estado", summaries.CountByState),
						stateBar(ChartSalesStates, fmt.Sprintf("Top %d estados", rankings.StateLimit), salesTitle, rankings.StatesByCount),
					},
				},
				{
					Metric: salesMetric,
					Charts: []domain.ChartSpec{
						monthlyLine(ChartSalesMonthly, "Quantidade de vendas mensal", salesTitle, summaries.CountByMonth),
						categoryBar(ChartSalesCategories, "Vendas por categoria", salesTitle, summaries.CountByCategory),
					},
				},
			},
		},
		{
			ID:    TabSellers,
			Title: "Vendedores",
			Columns: [2]domain.Column{
				{
					Metric: revenueMetric,
					Charts: []domain.ChartSpec{
						sellerBar(ChartSellersRevenue, fmt.Sprintf("Top %d vendedores (receita)", rankings.SellerLimit), revenueTitle,
							rankings.SellersByRevenue, func(s domain.SellerSummary) float64 { return s.Revenue }),
					},
				},
				{
					Metric: salesMetric,
					Charts: []domain.ChartSpec{
						sellerBar(ChartSellersSales, fmt.Sprintf("Top %d vendedores (quantidade de vendas)", rankings.SellerLimit), salesTitle,
							rankings.SellersByCount, func(s domain.SellerSummary) float64 { return float64(s.Count) }),
					},
				},
			},
		},
	}
}

func stateMap(id, title string, rows []domain.StateSummary) domain.ChartSpec {
	points := make([]domain.ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.ChartPoint{Label: row.State, X: row.Lon, Y: row.Lat, Size: row.Value})
	}

	return domain.ChartSpec{
		ID:     id,
		Kind:   domain.ChartKindBubbleMap,
		Title:  title,
		XTitle: "lon",
		YTitle: "lat",
		Series: []domain.ChartSeries{{Name: title, Points: points}},
	}
}

func stateBar(id, title, yTitle string, rows []domain.StateSummary) domain.ChartSpec {
	points := make([]domain.ChartPoint, 0, len(rows))
	for i, row := range rows {
		points = append(points, domain.ChartPoint{Label: row.State, X: float64(i), Y: row.Value})
	}

	return domain.ChartSpec{
		ID:     id,
		Kind:   domain.ChartKindBar,
		Title:  title,
		XTitle: stateTitle,
		YTitle: yTitle,
		Series: []domain.ChartSeries{{Name: yTitle, Points: points}},
	}
}

func categoryBar(id, title, yTitle string, rows []domain.CategorySummary) domain.ChartSpec {
	points := make([]domain.ChartPoint, 0, len(rows))
	for i, row := range rows {
		points = append(points, domain.ChartPoint{Label: row.Category, X: float64(i), Y: row.Value})
	}

	return domain.ChartSpec{
		ID:     id,
		Kind:   domain.ChartKindBar,
		Title:  title,
		XTitle: "Categoria do Produto",
		YTitle: yTitle,
		Series: []domain.ChartSeries{{Name: yTitle, Points: points}},
	}
}

func sellerBar(id, title, valueTitle string, rows []domain.SellerSummary, value func(domain.SellerSummary) float64) domain.ChartSpec {
	points := make([]domain.ChartPoint, 0, len(rows))
	for i, row := range rows {
		points = append(points, domain.ChartPoint{Label: row.Seller, X: float64(i), Y: value(row)})
	}

	return domain.ChartSpec{
		ID:         id,
		Kind:       domain.ChartKindBar,
		Title:      title,
		XTitle:     "Vendedor",
		YTitle:     valueTitle,
		Horizontal: true,
		Series:     []domain.ChartSeries{{Name: valueTitle, Points: points}},
	}
}

// monthlyLine cria uma série por ano com o mês no eixo x.
// O eixo y vai de zero ao maior valor mensal.
func monthlyLine(id, title, yTitle string, rows []domain.MonthSummary) domain.ChartSpec {
	spec := domain.ChartSpec{
		ID:     id,
		Kind:   domain.ChartKindLine,
		Title:  title,
		XTitle: monthTitle,
		YTitle: yTitle,
		Series: []domain.ChartSeries{},
	}

	byYear := make(map[int]int)
	maxValue := 0.0
	for _, row := range rows {
		idx, ok := byYear[row.Year]
		if !ok {
			idx = len(spec.Series)
			byYear[row.Year] = idx
			spec.Series = append(spec.Series, domain.ChartSeries{Name: strconv.Itoa(row.Year)})
		}
		spec.Series[idx].Points = append(spec.Series[idx].Points, domain.ChartPoint{
			Label: row.Month,
			X:     float64(row.PeriodEnd.Month()),
			Y:     row.Value,
		})
		maxValue = max(maxValue, row.Value)
	}

	if len(rows) > 0 {
		spec.YRange = &domain.AxisRange{Min: 0, Max: maxValue}
	}

	return spec
}
