package domain

type ChartKind string

const (
	ChartKindBubbleMap ChartKind = "bubble_map"
	ChartKindBar       ChartKind = "bar"
	ChartKindLine      ChartKind = "line"
)

type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ChartPoint é um ponto genérico. No mapa X é longitude, Y latitude e Size o valor agregado.
type ChartPoint struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size,omitempty"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartSpec descreve um gráfico de forma independente do renderizador
type ChartSpec struct {
	ID         string        `json:"id"`
	Kind       ChartKind     `json:"kind"`
	Title      string        `json:"title"`
	XTitle     string        `json:"x_title,omitempty"`
	YTitle     string        `json:"y_title,omitempty"`
	Horizontal bool          `json:"horizontal,omitempty"`
	YRange     *AxisRange    `json:"y_range,omitempty"`
	Series     []ChartSeries `json:"series"`
}

// IsEmpty indica se nenhuma série tem pontos
func (c *ChartSpec) IsEmpty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}
