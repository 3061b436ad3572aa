package domain

import "time"

type StateSummary struct {
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Value float64 `json:"value"`
}

// MonthSummary agrega um mês do calendário, identificado pelo último dia do mês
type MonthSummary struct {
	PeriodEnd time.Time `json:"period_end"`
	Year      int       `json:"year"`
	Month     string    `json:"month"`
	Value     float64   `json:"value"`
}

type CategorySummary struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type SellerSummary struct {
	Seller  string  `json:"seller"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// Summaries reúne as tabelas derivadas de um ciclo de renderização
type Summaries struct {
	RevenueByState    []StateSummary    `json:"revenue_by_state"`
	RevenueByMonth    []MonthSummary    `json:"revenue_by_month"`
	RevenueByCategory []CategorySummary `json:"revenue_by_category"`
	CountByState      []StateSummary    `json:"count_by_state"`
	CountByMonth      []MonthSummary    `json:"count_by_month"`
	CountByCategory   []CategorySummary `json:"count_by_category"`
	SellersByRevenue  []SellerSummary   `json:"sellers_by_revenue"`
	SellersByCount    []SellerSummary   `json:"sellers_by_count"`
	TotalRevenue      float64           `json:"total_revenue"`
	TotalCount        int               `json:"total_count"`
}

// Rankings são as fatias top-N exibidas nos gráficos de barra. Os limites são os pedidos,
// mesmo quando há menos grupos.
type Rankings struct {
	StateLimit       int             `json:"state_limit"`
	SellerLimit      int             `json:"seller_limit"`
	StatesByRevenue  []StateSummary  `json:"states_by_revenue"`
	StatesByCount    []StateSummary  `json:"states_by_count"`
	SellersByRevenue []SellerSummary `json:"sellers_by_revenue"`
	SellersByCount   []SellerSummary `json:"sellers_by_count"`
}
