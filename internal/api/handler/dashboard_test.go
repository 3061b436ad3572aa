package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

type fakeRenderer struct {
	err    error
	format charting.Format
	spec   *domain.ChartSpec
}

func (f *fakeRenderer) Render(spec *domain.ChartSpec, format charting.Format, w io.Writer) error {
	f.spec = spec
	f.format = format
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, "<svg>"+spec.Title+"</svg>")
	return err
}

func newDashboardRouter(service dashboard.Service, renderer charting.Renderer) http.Handler {
	return router.New(router.WithRoutes(Dashboard(service, renderer)...))
}

func decodeAPIError(t *testing.T, body io.Reader) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(body).Decode(&apiErr))
	return apiErr
}

func sampleDashboard() *domain.Dashboard {
	return &domain.Dashboard{
		RenderID: "abc123",
		Criteria: domain.FilterCriteria{Region: domain.RegionBrazil, AllYears: true, TopSellers: 5},
		Metrics: domain.Metrics{
			Revenue:         350,
			RevenueLabel:    "R$ 350.00",
			SalesCount:      3,
			SalesCountLabel: "3.00",
		},
		Sellers: []string{"Ana", "Bia"},
		Summaries: domain.Summaries{
			TotalRevenue: 350,
			TotalCount:   3,
		},
		Tabs: []domain.Tab{
			{
				ID:    charting.TabRevenue,
				Title: "Receita",
				Columns: [2]domain.Column{
					{
						Metric: domain.MetricCallout{Title: "Receita", Value: "R$ 350.00"},
						Charts: []domain.ChartSpec{{ID: charting.ChartRevenueMap, Kind: domain.ChartKindBubbleMap, Title: "Receita por estado"}},
					},
					{
						Metric: domain.MetricCallout{Title: "Quantidade de vendas", Value: "3.00"},
						Charts: []domain.ChartSpec{{ID: charting.ChartRevenueCategories, Kind: domain.ChartKindBar, Title: "Receita por categoria"}},
					},
				},
			},
		},
	}
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	expectedCriteria := domain.FilterCriteria{Region: domain.RegionSouth, Year: 2021, Sellers: []string{"Ana"}}
	service.EXPECT().
		Render(gomock.Any(), expectedCriteria).
		Return(sampleDashboard(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?region=Sul&all_years=false&year=2021&sellers=Ana", nil)
	newDashboardRouter(service, &fakeRenderer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body domain.Dashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "abc123", body.RenderID)
	assert.Equal(t, 3, body.Metrics.SalesCount)
	assert.Len(t, body.Tabs, 1)
}

func TestGetDashboard_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		serviceErr error
		status     int
		code       string
	}{
		{
			name:   "parâmetro inválido não chama o serviço",
			query:  "region=Marte",
			status: http.StatusBadRequest,
			code:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "ano fora do intervalo",
			query:      "all_years=false&year=1990",
			serviceErr: dashboard.NewDashboardError(dashboard.ErrInvalidYear, apiErrors.ErrInvalidRequest, "ano deve estar entre 2020 e 2023"),
			status:     http.StatusBadRequest,
			code:       apiErrors.ErrInvalidRequest,
		},
		{
			name:       "falha na API de vendas",
			serviceErr: &domain.FetchError{URL: "https://labdados.com/produtos", StatusCode: http.StatusServiceUnavailable},
			status:     http.StatusBadGateway,
			code:       apiErrors.ErrExternalService,
		},
		{
			name:       "resposta inválida da API de vendas",
			serviceErr: &domain.ParseError{Index: 2, Field: "Preço"},
			status:     http.StatusBadGateway,
			code:       apiErrors.ErrExternalResponse,
		},
		{
			name:       "erro inesperado",
			serviceErr: errors.New("boom"),
			status:     http.StatusInternalServerError,
			code:       apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockService(ctrl)
			if tt.serviceErr != nil {
				service.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?"+tt.query, nil)
			newDashboardRouter(service, &fakeRenderer{}).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeAPIError(t, rec.Body).Code)
		})
	}
}

func TestGetChart(t *testing.T) {
	spec := &domain.ChartSpec{ID: charting.ChartRevenueMonthly, Kind: domain.ChartKindLine, Title: "Receita mensal"}

	tests := []struct {
		name        string
		query       string
		contentType string
		format      charting.Format
	}{
		{name: "svg por padrão", query: "", contentType: "image/svg+xml", format: charting.FormatSVG},
		{name: "png", query: "format=png", contentType: "image/png", format: charting.FormatPNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockService(ctrl)
			service.EXPECT().
				Chart(gomock.Any(), gomock.Any(), charting.ChartRevenueMonthly).
				Return(spec, nil)

			renderer := &fakeRenderer{}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/charts/"+charting.ChartRevenueMonthly+"?"+tt.query, nil)
			newDashboardRouter(service, renderer).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, "<svg>Receita mensal</svg>", rec.Body.String())
			assert.Equal(t, tt.format, renderer.format)
			assert.Same(t, spec, renderer.spec)
		})
	}
}

func TestGetChart_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().
		Chart(gomock.Any(), gomock.Any(), charting.ChartSalesMap).
		Return(&domain.ChartSpec{
			ID:    charting.ChartSalesMap,
			Kind:  domain.ChartKindBubbleMap,
			Title: "Vendas por estado",
			Series: []domain.ChartSeries{{
				Name:   "Vendas",
				Points: []domain.ChartPoint{{Label: "SP", X: -46.6, Y: -23.5, Size: 2}},
			}},
		}, nil)

	renderer := &fakeRenderer{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/charts/"+charting.ChartSalesMap+"?format=json", nil)
	newDashboardRouter(service, renderer).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, renderer.spec)

	var body domain.ChartSpec
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, domain.ChartKindBubbleMap, body.Kind)
	require.Len(t, body.Series, 1)
	assert.Equal(t, "SP", body.Series[0].Points[0].Label)
}

func TestGetChart_Errors(t *testing.T) {
	t.Run("formato inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockService(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/"+charting.ChartRevenueMap+"?format=gif", nil)
		newDashboardRouter(service, &fakeRenderer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec.Body).Code)
	})

	t.Run("gráfico inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockService(ctrl)
		service.EXPECT().
			Chart(gomock.Any(), gomock.Any(), "pizza").
			Return(nil, dashboard.NewDashboardError(dashboard.ErrChartNotFound, apiErrors.ErrResourceNotFound, `gráfico "pizza" não existe`))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/pizza", nil)
		newDashboardRouter(service, &fakeRenderer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		apiErr := decodeAPIError(t, rec.Body)
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
		assert.Equal(t, dashboard.ErrChartNotFound.Error(), apiErr.Message)
	})

	t.Run("falha ao desenhar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockService(ctrl)
		service.EXPECT().
			Chart(gomock.Any(), gomock.Any(), charting.ChartRevenueMap).
			Return(&domain.ChartSpec{ID: charting.ChartRevenueMap}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/charts/"+charting.ChartRevenueMap, nil)
		newDashboardRouter(service, &fakeRenderer{err: errors.New("sem fonte")}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec.Body).Code)
	})
}

func TestGetSellers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().
		Sellers(gomock.Any(), domain.FilterCriteria{Region: domain.RegionNorth, AllYears: true}).
		DoAndReturn(func(ctx context.Context, _ domain.FilterCriteria) ([]string, error) {
			assert.NotEmpty(t, log.GetCorrelationID(ctx))
			return []string{"Ana", "Bia"}, nil
		})

	handler := GetSellers(service)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sellers?region=Norte", nil)
	ctx, _ := log.WithCorrelationID(req.Context(), "")
	handler.ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Sellers []string `json:"sellers"`
		Total   int      `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []string{"Ana", "Bia"}, body.Sellers)
	assert.Equal(t, 2, body.Total)
}
