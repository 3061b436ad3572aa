package dashboard

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Service interface {
	// Render executa o ciclo completo: busca, filtro, agregação e montagem das abas
	Render(ctx context.Context, criteria domain.FilterCriteria) (*domain.Dashboard, error)
	// Chart devolve um único gráfico calculado com os mesmos filtros
	Chart(ctx context.Context, criteria domain.FilterCriteria, chartID string) (*domain.ChartSpec, error)
	// Sellers lista os vendedores da tabela buscada, antes do filtro por vendedor
	Sellers(ctx context.Context, criteria domain.FilterCriteria) ([]string, error)
	// Normalize valida os filtros e preenche os valores padrão
	Normalize(criteria domain.FilterCriteria) (domain.FilterCriteria, error)
}

type DashboardService struct {
	salesService salesapi.SalesIntegrator
	cfg          *config.Config
	group        singleflight.Group
}

func NewService(salesService salesapi.SalesIntegrator, cfg *config.Config) Service {
	return &DashboardService{
		salesService: salesService,
		cfg:          cfg,
	}
}

func (s *DashboardService) Normalize(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
	if criteria.Region == "" {
		criteria.Region = domain.RegionBrazil
	}
	region, ok := domain.ParseRegion(string(criteria.Region))
	if !ok {
		return criteria, NewDashboardError(ErrInvalidRegion, apiErrors.ErrInvalidFormat, fmt.Sprintf("região %q não existe", criteria.Region))
	}
	criteria.Region = region

	if criteria.AllYears {
		criteria.Year = 0
	} else if criteria.Year < s.cfg.Dashboard.MinYear || criteria.Year > s.cfg.Dashboard.MaxYear {
		return criteria, NewDashboardError(ErrInvalidYear, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("ano deve estar entre %d e %d", s.cfg.Dashboard.MinYear, s.cfg.Dashboard.MaxYear))
	}

	if criteria.TopSellers == 0 {
		criteria.TopSellers = s.cfg.Dashboard.DefaultTopSellers
	}
	if criteria.TopSellers < s.cfg.Dashboard.MinTopSellers || criteria.TopSellers > s.cfg.Dashboard.MaxTopSellers {
		return criteria, NewDashboardError(ErrInvalidTopSellers, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("quantidade de vendedores deve estar entre %d e %d", s.cfg.Dashboard.MinTopSellers, s.cfg.Dashboard.MaxTopSellers))
	}

	return criteria, nil
}

// fetch compartilha a mesma chamada à API entre requisições simultâneas com a mesma consulta.
// Nada fica guardado depois que a chamada termina.
func (s *DashboardService) fetch(ctx context.Context, query domain.SalesQuery) ([]domain.SaleRecord, error) {
	v, err, shared := s.group.Do(query.Key(), func() (interface{}, error) {
		return s.salesService.GetSales(context.WithoutCancel(ctx), query)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		logrus.WithFields(logrus.Fields{
			"region": query.Region,
			"year":   query.Year,
		}).Debug("dashboard: resposta da API de vendas compartilhada")
	}

	return v.([]domain.SaleRecord), nil
}

func (s *DashboardService) Render(ctx context.Context, criteria domain.FilterCriteria) (*domain.Dashboard, error) {
	criteria, err := s.Normalize(criteria)
	if err != nil {
		return nil, err
	}

	records, err := s.fetch(ctx, criteria.SalesQuery())
	if err != nil {
		return nil, err
	}

	renderID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	sellers := DistinctSellers(records)
	filtered := FilterBySellers(records, criteria.Sellers)

	empty := false
	if err := checkNotEmpty(filtered); err != nil {
		logrus.WithField("render_id", renderID).WithError(err).Info("dashboard: nenhum registro após os filtros")
		empty = true
	}

	summaries := Aggregate(filtered)
	metrics := charting.Metrics(summaries)
	rankings := domain.Rankings{
		StateLimit:       s.cfg.Dashboard.TopStates,
		SellerLimit:      criteria.TopSellers,
		StatesByRevenue:  TopN(summaries.RevenueByState, s.cfg.Dashboard.TopStates),
		StatesByCount:    TopN(summaries.CountByState, s.cfg.Dashboard.TopStates),
		SellersByRevenue: TopN(summaries.SellersByRevenue, criteria.TopSellers),
		SellersByCount:   TopN(summaries.SellersByCount, criteria.TopSellers),
	}

	return &domain.Dashboard{
		RenderID:  renderID,
		Criteria:  criteria,
		Empty:     empty,
		Metrics:   metrics,
		Sellers:   sellers,
		Summaries: summaries,
		Rankings:  rankings,
		Tabs:      charting.BuildTabs(summaries, rankings, metrics),
	}, nil
}

func checkNotEmpty(records []domain.SaleRecord) error {
	if len(records) == 0 {
		return domain.ErrEmptyResult
	}
	return nil
}

func (s *DashboardService) Chart(ctx context.Context, criteria domain.FilterCriteria, chartID string) (*domain.ChartSpec, error) {
	if !slices.Contains(charting.ChartIDs, chartID) {
		return nil, chartNotFound(chartID)
	}

	dashboard, err := s.Render(ctx, criteria)
	if err != nil {
		return nil, err
	}

	spec, ok := dashboard.Chart(chartID)
	if !ok {
		return nil, chartNotFound(chartID)
	}

	return spec, nil
}

func chartNotFound(chartID string) error {
	return NewDashboardError(ErrChartNotFound, apiErrors.ErrResourceNotFound, fmt.Sprintf("gráfico %q não existe", chartID))
}

func (s *DashboardService) Sellers(ctx context.Context, criteria domain.FilterCriteria) ([]string, error) {
	criteria, err := s.Normalize(criteria)
	if err != nil {
		return nil, err
	}

	records, err := s.fetch(ctx, criteria.SalesQuery())
	if err != nil {
		return nil, err
	}

	return DistinctSellers(records), nil
}

// ErrorCode traduz um erro do ciclo de renderização para o código da API
func ErrorCode(err error) string {
	var dashboardErr *DashboardError
	switch {
	case errors.As(err, &dashboardErr):
		return dashboardErr.Code
	case errors.Is(err, domain.ErrFetch):
		return apiErrors.ErrExternalService
	case errors.Is(err, domain.ErrParse):
		return apiErrors.ErrExternalResponse
	default:
		return apiErrors.ErrInternalServer
	}
}
