package dashboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Receita é acumulada em decimal para que a soma não dependa da ordem dos registros.

type stateGroup struct {
	lat     float64
	lon     float64
	revenue decimal.Decimal
	count   int
}

type group struct {
	revenue decimal.Decimal
	count   int
}

func groupByState(records []domain.SaleRecord) ([]string, map[string]*stateGroup) {
	groups := make(map[string]*stateGroup)
	for _, record := range records {
		g, ok := groups[record.State]
		if !ok {
			// lat/lon do primeiro registro do estado
			g = &stateGroup{lat: record.Lat, lon: record.Lon}
			groups[record.State] = g
		}
		g.revenue = g.revenue.Add(decimal.NewFromFloat(record.Price))
		g.count++
	}

	return sortedKeys(groups), groups
}

func groupBy(records []domain.SaleRecord, key func(domain.SaleRecord) string) ([]string, map[string]*group) {
	groups := make(map[string]*group)
	for _, record := range records {
		k := key(record)
		g, ok := groups[k]
		if !ok {
			g = &group{}
			groups[k] = g
		}
		g.revenue = g.revenue.Add(decimal.NewFromFloat(record.Price))
		g.count++
	}

	return sortedKeys(groups), groups
}

func sortedKeys[V any](groups map[string]V) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func stateSummaries(records []domain.SaleRecord, value func(*stateGroup) float64) []domain.StateSummary {
	keys, groups := groupByState(records)

	rows := make([]domain.StateSummary, 0, len(keys))
	for _, state := range keys {
		g := groups[state]
		rows = append(rows, domain.StateSummary{
			State: state,
			Lat:   g.lat,
			Lon:   g.lon,
			Value: value(g),
		})
	}

	slices.SortStableFunc(rows, func(a, b domain.StateSummary) int {
		return cmp.Compare(b.Value, a.Value)
	})

	return rows
}

// RevenueByState soma a receita por estado, ordenada da maior para a menor
func RevenueByState(records []domain.SaleRecord) []domain.StateSummary {
	return stateSummaries(records, func(g *stateGroup) float64 { return g.revenue.InexactFloat64() })
}

// CountByState conta as vendas por estado, ordenada da maior para a menor
func CountByState(records []domain.SaleRecord) []domain.StateSummary {
	return stateSummaries(records, func(g *stateGroup) float64 { return float64(g.count) })
}

func monthSummaries(records []domain.SaleRecord, value func(*group) float64) []domain.MonthSummary {
	if len(records) == 0 {
		return []domain.MonthSummary{}
	}

	keys, groups := groupBy(records, func(r domain.SaleRecord) string {
		return monthKey(r.PurchaseDate)
	})

	first, _ := time.Parse(monthKeyLayout, keys[0])
	last, _ := time.Parse(monthKeyLayout, keys[len(keys)-1])

	// Meses sem vendas entre o primeiro e o último aparecem com zero
	rows := make([]domain.MonthSummary, 0, len(keys))
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		periodEnd := utils.EndOfMonth(month)
		row := domain.MonthSummary{
			PeriodEnd: periodEnd,
			Year:      periodEnd.Year(),
			Month:     periodEnd.Month().String(),
		}
		if g, ok := groups[monthKey(month)]; ok {
			row.Value = value(g)
		}
		rows = append(rows, row)
	}

	return rows
}

const monthKeyLayout = "2006-01"

func monthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// RevenueByMonth soma a receita por mês do calendário em ordem cronológica
func RevenueByMonth(records []domain.SaleRecord) []domain.MonthSummary {
	return monthSummaries(records, func(g *group) float64 { return g.revenue.InexactFloat64() })
}

// CountByMonth conta as vendas por mês do calendário em ordem cronológica
func CountByMonth(records []domain.SaleRecord) []domain.MonthSummary {
	return monthSummaries(records, func(g *group) float64 { return float64(g.count) })
}

func categorySummaries(records []domain.SaleRecord, value func(*group) float64) []domain.CategorySummary {
	keys, groups := groupBy(records, func(r domain.SaleRecord) string { return r.Category })

	rows := make([]domain.CategorySummary, 0, len(keys))
	for _, category := range keys {
		rows = append(rows, domain.CategorySummary{
			Category: category,
			Value:    value(groups[category]),
		})
	}

	slices.SortStableFunc(rows, func(a, b domain.CategorySummary) int {
		return cmp.Compare(b.Value, a.Value)
	})

	return rows
}

func RevenueByCategory(records []domain.SaleRecord) []domain.CategorySummary {
	return categorySummaries(records, func(g *group) float64 { return g.revenue.InexactFloat64() })
}

func CountByCategory(records []domain.SaleRecord) []domain.CategorySummary {
	return categorySummaries(records, func(g *group) float64 { return float64(g.count) })
}

// SellerStats calcula soma e contagem por vendedor numa única passada, em ordem alfabética
func SellerStats(records []domain.SaleRecord) []domain.SellerSummary {
	keys, groups := groupBy(records, func(r domain.SaleRecord) string { return r.Seller })

	rows := make([]domain.SellerSummary, 0, len(keys))
	for _, seller := range keys {
		g := groups[seller]
		rows = append(rows, domain.SellerSummary{
			Seller:  seller,
			Revenue: g.revenue.InexactFloat64(),
			Count:   g.count,
		})
	}

	return rows
}

func SellersByRevenue(stats []domain.SellerSummary) []domain.SellerSummary {
	rows := slices.Clone(stats)
	slices.SortStableFunc(rows, func(a, b domain.SellerSummary) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})
	return rows
}

func SellersByCount(stats []domain.SellerSummary) []domain.SellerSummary {
	rows := slices.Clone(stats)
	slices.SortStableFunc(rows, func(a, b domain.SellerSummary) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return rows
}

// TotalRevenue soma o preço de todos os registros
func TotalRevenue(records []domain.SaleRecord) float64 {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(decimal.NewFromFloat(record.Price))
	}
	return total.InexactFloat64()
}

// Aggregate calcula todas as tabelas de resumo. Entrada vazia devolve tabelas vazias e totais zerados.
func Aggregate(records []domain.SaleRecord) domain.Summaries {
	stats := SellerStats(records)

	return domain.Summaries{
		RevenueByState:    RevenueByState(records),
		RevenueByMonth:    RevenueByMonth(records),
		RevenueByCategory: RevenueByCategory(records),
		CountByState:      CountByState(records),
		CountByMonth:      CountByMonth(records),
		CountByCategory:   CountByCategory(records),
		SellersByRevenue:  SellersByRevenue(stats),
		SellersByCount:    SellersByCount(stats),
		TotalRevenue:      TotalRevenue(records),
		TotalCount:        len(records),
	}
}
