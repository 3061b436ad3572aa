package salesapi

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	salesdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SalesIntegrator interface {
	GetSales(ctx context.Context, query domain.SalesQuery) ([]domain.SaleRecord, error)
	CheckConnection(ctx context.Context) (int, error)
}

type SalesService struct {
	Client salesclient.Client
}

func New(client salesclient.Client) SalesIntegrator {
	return &SalesService{
		Client: client,
	}
}

// GetSales busca as vendas e valida cada registro. O lote inteiro falha no primeiro registro inválido.
func (s *SalesService) GetSales(ctx context.Context, query domain.SalesQuery) ([]domain.SaleRecord, error) {
	resp, err := s.Client.GetSales(ctx, salesclient.SalesConsultationParams{
		Region: query.Region,
		Year:   query.Year,
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, 0, len(resp))
	for i, sale := range resp {
		record, err := toSaleRecord(i, sale)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"region": query.Region,
				"year":   query.Year,
				"index":  i,
			}).Warn("salesapi: registro inválido na resposta")
			if logrus.IsLevelEnabled(logrus.DebugLevel) {
				logrus.Debugf("salesapi: registro recusado:\n%s", utils.PrettyJson(sale))
			}
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// CheckConnection faz uma consulta sem filtros e devolve quantos registros vieram
func (s *SalesService) CheckConnection(ctx context.Context) (int, error) {
	resp, err := s.Client.GetSales(ctx, salesclient.SalesConsultationParams{})
	if err != nil {
		return 0, err
	}

	return len(resp), nil
}

func toSaleRecord(index int, sale salesdomain.Sale) (domain.SaleRecord, error) {
	var record domain.SaleRecord

	if sale.PurchaseDate == nil || strings.TrimSpace(*sale.PurchaseDate) == "" {
		return record, &domain.ParseError{Index: index, Field: salesdomain.FieldPurchaseDate}
	}
	purchaseDate, err := utils.ParsePurchaseDate(strings.TrimSpace(*sale.PurchaseDate))
	if err != nil {
		return record, &domain.ParseError{Index: index, Field: salesdomain.FieldPurchaseDate, Value: *sale.PurchaseDate, Err: err}
	}

	if sale.Price == nil {
		return record, &domain.ParseError{Index: index, Field: salesdomain.FieldPrice}
	}

	required := []struct {
		field string
		value *string
	}{
		{salesdomain.FieldCategory, sale.Category},
		{salesdomain.FieldSeller, sale.Seller},
		{salesdomain.FieldState, sale.State},
	}
	for _, r := range required {
		if r.value == nil {
			return record, &domain.ParseError{Index: index, Field: r.field}
		}
	}

	if sale.Lat == nil {
		return record, &domain.ParseError{Index: index, Field: salesdomain.FieldLat}
	}
	if sale.Lon == nil {
		return record, &domain.ParseError{Index: index, Field: salesdomain.FieldLon}
	}

	record = domain.SaleRecord{
		PurchaseDate: purchaseDate,
		Price:        *sale.Price,
		Category:     *sale.Category,
		Seller:       *sale.Seller,
		State:        *sale.State,
		Lat:          *sale.Lat,
		Lon:          *sale.Lon,
		Product:      sale.Product,
		Freight:      sale.Freight,
		PaymentType:  sale.PaymentType,
		Installments: sale.Installments,
		Rating:       sale.Rating,
	}

	return record, nil
}
