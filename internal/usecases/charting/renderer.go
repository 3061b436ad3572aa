package charting

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

var ErrUnsupportedFormat = errors.New("unsupported chart format")

// ParseFormat aceita svg e png. Vazio equivale a svg.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", value)
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

const (
	emptyTitle = "Sem dados"

	minBubble = 4.0
	maxBubble = 40.0
)

type Renderer interface {
	Render(spec *domain.ChartSpec, format Format, w io.Writer) error
}

type ChartRenderer struct {
	width  int
	height int
}

func NewRenderer(cfg *config.Config) Renderer {
	return &ChartRenderer{
		width:  cfg.Chart.Width,
		height: cfg.Chart.Height,
	}
}

// Render desenha o gráfico no formato pedido. Gráfico sem pontos vira um quadro vazio.
func (r *ChartRenderer) Render(spec *domain.ChartSpec, format Format, w io.Writer) error {
	if spec == nil || spec.IsEmpty() {
		return r.renderEmpty(spec, format, w)
	}

	var err error
	switch spec.Kind {
	case domain.ChartKindBubbleMap:
		err = r.renderBubbleMap(spec, format, w)
	case domain.ChartKindBar:
		err = r.renderBar(spec, format, w)
	case domain.ChartKindLine:
		err = r.renderLine(spec, format, w)
	default:
		return errors.Errorf("tipo de gráfico desconhecido: %s", spec.Kind)
	}

	return errors.Wrapf(err, "erro ao desenhar o gráfico %s", spec.ID)
}

func (r *ChartRenderer) background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func (r *ChartRenderer) renderEmpty(spec *domain.ChartSpec, format Format, w io.Writer) error {
	title := emptyTitle
	if spec != nil && spec.Title != "" {
		title = spec.Title + " - " + emptyTitle
	}

	hidden := chart.Style{Hidden: true}
	graph := chart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		XAxis:      chart.XAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:      chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Series: []chart.Series{
			// O go-chart exige ao menos uma série visível; esta tem a cor do fundo.
			// Cor zero vira a cor padrão, por isso não dá para usar ColorTransparent.
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style: chart.Style{
					StrokeColor: drawing.ColorWhite,
					StrokeWidth: 1,
				},
			},
		},
	}

	return graph.Render(format.provider(), w)
}

// renderBubbleMap projeta os estados em (lon, lat) com o raio proporcional ao valor
func (r *ChartRenderer) renderBubbleMap(spec *domain.ChartSpec, format Format, w io.Writer) error {
	points := spec.Series[0].Points

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	sizes := make([]float64, 0, len(points))
	annotations := make([]chart.Value2, 0, len(points))
	maxSize := 0.0
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		sizes = append(sizes, p.Size)
		maxSize = math.Max(maxSize, p.Size)
		annotations = append(annotations, chart.Value2{XValue: p.X, YValue: p.Y, Label: p.Label})
	}

	xMin, xMax := padRange(xs, 2)
	yMin, yMax := padRange(ys, 2)

	graph := chart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		// Sem projeção geográfica no go-chart: longitude e latitude viram x e y, sem eixos
		XAxis: chart.XAxis{Style: chart.Style{Hidden: true}, Range: &chart.ContinuousRange{Min: xMin, Max: xMax}},
		YAxis: chart.YAxis{Style: chart.Style{Hidden: true}, Range: &chart.ContinuousRange{Min: yMin, Max: yMax}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.Series[0].Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    chart.ColorBlue.WithAlpha(160),
					DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
						return bubbleSize(sizes[index], maxSize)
					},
				},
			},
			chart.AnnotationSeries{Annotations: annotations},
		},
	}

	return graph.Render(format.provider(), w)
}

func bubbleSize(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return minBubble
	}
	// Área proporcional ao valor
	return minBubble + (maxBubble-minBubble)*math.Sqrt(value/maxValue)
}

func padRange(values []float64, pad float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo - pad, hi + pad
}

// renderBar desenha barras verticais. Os rankings marcados como horizontais usam a mesma
// forma, já que o BarChart não tem orientação horizontal.
func (r *ChartRenderer) renderBar(spec *domain.ChartSpec, format Format, w io.Writer) error {
	points := spec.Series[0].Points

	bars := make([]chart.Value, 0, len(points))
	maxValue := 0.0
	for _, p := range points {
		bars = append(bars, chart.Value{Value: p.Y, Label: p.Label})
		maxValue = math.Max(maxValue, p.Y)
	}

	graph := chart.BarChart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		BarWidth:   barWidth(r.width, len(bars)),
		XAxis:      chart.Style{FontSize: 9},
		YAxis: chart.YAxis{
			Name:  spec.YTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: upperBound(maxValue)},
		},
		Bars: bars,
	}

	return graph.Render(format.provider(), w)
}

func barWidth(width, bars int) int {
	if bars == 0 {
		return 0
	}
	return max(8, min(60, width/(2*bars)))
}

// upperBound evita eixo com amplitude zero quando todos os valores são zero
func upperBound(maxValue float64) float64 {
	if maxValue <= 0 {
		return 1
	}
	return maxValue
}

// renderLine desenha uma série por ano, com o mês no eixo x
func (r *ChartRenderer) renderLine(spec *domain.ChartSpec, format Format, w io.Writer) error {
	series := make([]chart.Series, 0, len(spec.Series))
	maxValue := 0.0

	for i, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			maxValue = math.Max(maxValue, p.Y)
		}

		color := chart.GetDefaultColor(i)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    4,
			},
		})
	}

	yRange := &chart.ContinuousRange{Min: 0, Max: upperBound(maxValue)}
	if spec.YRange != nil {
		yRange = &chart.ContinuousRange{Min: spec.YRange.Min, Max: upperBound(spec.YRange.Max)}
	}

	// Ticks explícitos definem o intervalo do eixo x, então os doze meses sempre aparecem
	ticks := make([]chart.Tick, 0, 12)
	for month := time.January; month <= time.December; month++ {
		ticks = append(ticks, chart.Tick{Value: float64(month), Label: month.String()[:3]})
	}

	graph := chart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: r.background(),
		XAxis: chart.XAxis{
			Name:  spec.XTitle,
			Range: &chart.ContinuousRange{Min: 1, Max: 12},
			Ticks: ticks,
		},
		YAxis:  chart.YAxis{Name: spec.YTitle, Range: yRange},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(format.provider(), w)
}
