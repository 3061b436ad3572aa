package domain

// Dashboard é o modelo de visualização produzido a cada interação com os filtros
type Dashboard struct {
	RenderID  string         `json:"render_id"`
	Criteria  FilterCriteria `json:"criteria"`
	Empty     bool           `json:"empty"`
	Metrics   Metrics        `json:"metrics"`
	Sellers   []string       `json:"sellers"`
	Summaries Summaries      `json:"summaries"`
	Rankings  Rankings       `json:"rankings"`
	Tabs      []Tab          `json:"tabs"`
}

type Metrics struct {
	Revenue         float64 `json:"revenue"`
	RevenueLabel    string  `json:"revenue_label"`
	SalesCount      int     `json:"sales_count"`
	SalesCountLabel string  `json:"sales_count_label"`
}

type MetricCallout struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Column é uma das duas colunas de uma aba
type Column struct {
	Metric MetricCallout `json:"metric"`
	Charts []ChartSpec   `json:"charts"`
}

type Tab struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Columns [2]Column `json:"columns"`
}

// Chart procura um gráfico pelo id em todas as abas
func (d *Dashboard) Chart(id string) (*ChartSpec, bool) {
	for t := range d.Tabs {
		for c := range d.Tabs[t].Columns {
			for i := range d.Tabs[t].Columns[c].Charts {
				if d.Tabs[t].Columns[c].Charts[i].ID == id {
					return &d.Tabs[t].Columns[c].Charts[i], true
				}
			}
		}
	}
	return nil, false
}
