package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func monthRow(year int, month time.Month, value float64) domain.MonthSummary {
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return domain.MonthSummary{PeriodEnd: end, Year: year, Month: month.String(), Value: value}
}

func testSummaries() domain.Summaries {
	return domain.Summaries{
		RevenueByState: []domain.StateSummary{
			{State: "SP", Lat: -23.5, Lon: -46.6, Value: 300},
			{State: "RJ", Lat: -22.9, Lon: -43.2, Value: 50},
		},
		CountByState: []domain.StateSummary{
			{State: "SP", Lat: -23.5, Lon: -46.6, Value: 2},
			{State: "RJ", Lat: -22.9, Lon: -43.2, Value: 1},
		},
		RevenueByMonth: []domain.MonthSummary{
			monthRow(2022, time.December, 1200),
			monthRow(2023, time.January, 300),
			monthRow(2023, time.February, 50),
		},
		CountByMonth: []domain.MonthSummary{
			monthRow(2022, time.December, 4),
			monthRow(2023, time.January, 2),
			monthRow(2023, time.February, 1),
		},
		RevenueByCategory: []domain.CategorySummary{{Category: "livros", Value: 350}},
		CountByCategory:   []domain.CategorySummary{{Category: "livros", Value: 3}},
		SellersByRevenue:  []domain.SellerSummary{{Seller: "B", Revenue: 200, Count: 1}, {Seller: "A", Revenue: 150, Count: 2}},
		SellersByCount:    []domain.SellerSummary{{Seller: "A", Revenue: 150, Count: 2}, {Seller: "B", Revenue: 200, Count: 1}},
		TotalRevenue:      350,
		TotalCount:        3,
	}
}

func findChart(t *testing.T, tabs []domain.Tab, id string) domain.ChartSpec {
	t.Helper()
	dashboard := domain.Dashboard{Tabs: tabs}
	spec, ok := dashboard.Chart(id)
	require.True(t, ok, id)
	return *spec
}

func TestMetrics(t *testing.T) {
	metrics := Metrics(domain.Summaries{TotalRevenue: 2_300_000.456, TotalCount: 1500})

	assert.Equal(t, 2_300_000.46, metrics.Revenue)
	assert.Equal(t, "R$ 2.30 milhões", metrics.RevenueLabel)
	assert.Equal(t, 1500, metrics.SalesCount)
	assert.Equal(t, "1.50 mil", metrics.SalesCountLabel)
}

func TestBuildTabs_Layout(t *testing.T) {
	summaries := testSummaries()
	rankings := domain.Rankings{
		StateLimit:       5,
		SellerLimit:      3,
		StatesByRevenue:  summaries.RevenueByState,
		StatesByCount:    summaries.CountByState,
		SellersByRevenue: summaries.SellersByRevenue,
		SellersByCount:   summaries.SellersByCount,
	}

	tabs := BuildTabs(summaries, rankings, Metrics(summaries))

	require.Len(t, tabs, 3)
	assert.Equal(t, []string{"Receita", "Quantidade de vendas", "Vendedores"}, []string{tabs[0].Title, tabs[1].Title, tabs[2].Title})

	for _, tab := range tabs {
		assert.Equal(t, "Receita", tab.Columns[0].Metric.Title)
		assert.Equal(t, "R$ 350.00 ", tab.Columns[0].Metric.Value)
		assert.Equal(t, "Quantidade de vendas", tab.Columns[1].Metric.Title)
		assert.Equal(t, "3.00 ", tab.Columns[1].Metric.Value)
	}

	ids := func(column domain.Column) []string {
		out := []string{}
		for _, c := range column.Charts {
			out = append(out, c.ID)
		}
		return out
	}
	assert.Equal(t, []string{ChartRevenueMap, ChartRevenueStates}, ids(tabs[0].Columns[0]))
	assert.Equal(t, []string{ChartRevenueMonthly, ChartRevenueCategories}, ids(tabs[0].Columns[1]))
	assert.Equal(t, []string{ChartSalesMap, ChartSalesStates}, ids(tabs[1].Columns[0]))
	assert.Equal(t, []string{ChartSalesMonthly, ChartSalesCategories}, ids(tabs[1].Columns[1]))
	assert.Equal(t, []string{ChartSellersRevenue}, ids(tabs[2].Columns[0]))
	assert.Equal(t, []string{ChartSellersSales}, ids(tabs[2].Columns[1]))

	assert.Equal(t, "Top 5 estados", findChart(t, tabs, ChartSalesStates).Title)
	assert.Equal(t, "Top 3 vendedores (receita)", findChart(t, tabs, ChartSellersRevenue).Title)
	assert.Equal(t, "Top 3 vendedores (quantidade de vendas)", findChart(t, tabs, ChartSellersSales).Title)
	assert.True(t, findChart(t, tabs, ChartSellersSales).Horizontal)
}

func TestBuildTabs_BubbleMap(t *testing.T) {
	summaries := testSummaries()
	tabs := BuildTabs(summaries, domain.Rankings{}, Metrics(summaries))

	spec := findChart(t, tabs, ChartRevenueMap)

	assert.Equal(t, domain.ChartKindBubbleMap, spec.Kind)
	assert.Equal(t, "Receita por estado", spec.Title)
	require.Len(t, spec.Series[0].Points, 2)
	assert.Equal(t, domain.ChartPoint{Label: "SP", X: -46.6, Y: -23.5, Size: 300}, spec.Series[0].Points[0])
}

func TestBuildTabs_MonthlyLineSeriesPerYear(t *testing.T) {
	summaries := testSummaries()
	tabs := BuildTabs(summaries, domain.Rankings{}, Metrics(summaries))

	for _, tc := range []struct {
		id  string
		max float64
	}{
		{ChartRevenueMonthly, 1200},
		{ChartSalesMonthly, 4},
	} {
		spec := findChart(t, tabs, tc.id)

		assert.Equal(t, domain.ChartKindLine, spec.Kind)
		require.Len(t, spec.Series, 2)
		assert.Equal(t, "2022", spec.Series[0].Name)
		assert.Equal(t, "2023", spec.Series[1].Name)
		assert.Len(t, spec.Series[1].Points, 2)
		assert.Equal(t, "January", spec.Series[1].Points[0].Label)
		assert.Equal(t, 1.0, spec.Series[1].Points[0].X)
		// O eixo y vai até o maior valor mensal nos dois gráficos
		require.NotNil(t, spec.YRange)
		assert.Equal(t, domain.AxisRange{Min: 0, Max: tc.max}, *spec.YRange)
	}
}

func TestBuildTabs_Empty(t *testing.T) {
	tabs := BuildTabs(domain.Summaries{}, domain.Rankings{StateLimit: 5, SellerLimit: 5}, Metrics(domain.Summaries{}))

	for _, id := range ChartIDs {
		spec := findChart(t, tabs, id)
		assert.True(t, spec.IsEmpty(), id)
		assert.Nil(t, spec.YRange, id)
	}
	assert.Equal(t, "R$ 0.00 ", tabs[0].Columns[0].Metric.Value)
}
