package salesapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	salesdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type fakeClient struct {
	params salesclient.SalesConsultationParams
	resp   salesclient.SalesConsultationResponse
	err    error
}

func (f *fakeClient) GetSales(_ context.Context, params salesclient.SalesConsultationParams) (salesclient.SalesConsultationResponse, error) {
	f.params = params
	return f.resp, f.err
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validSale() salesdomain.Sale {
	return salesdomain.Sale{
		PurchaseDate: strPtr("15/03/2021"),
		Price:        floatPtr(250.75),
		Category:     strPtr("eletronicos"),
		Seller:       strPtr("Bruno"),
		State:        strPtr("RJ"),
		Lat:          floatPtr(-22.9),
		Lon:          floatPtr(-43.2),
		Product:      "Fone",
		Rating:       5,
	}
}

func TestSalesService_GetSales(t *testing.T) {
	t.Run("converte registros validos", func(t *testing.T) {
		client := &fakeClient{resp: salesclient.SalesConsultationResponse{validSale()}}
		service := New(client)

		records, err := service.GetSales(context.Background(), domain.SalesQuery{Region: "sudeste", Year: "2021"})

		require.NoError(t, err)
		assert.Equal(t, "sudeste", client.params.Region)
		assert.Equal(t, "2021", client.params.Year)
		require.Len(t, records, 1)
		assert.Equal(t, time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), records[0].PurchaseDate)
		assert.Equal(t, 250.75, records[0].Price)
		assert.Equal(t, "Bruno", records[0].Seller)
		assert.Equal(t, "RJ", records[0].State)
		assert.Equal(t, "Fone", records[0].Product)
		assert.Equal(t, 5, records[0].Rating)
	})

	t.Run("lista vazia nao e erro", func(t *testing.T) {
		service := New(&fakeClient{})

		records, err := service.GetSales(context.Background(), domain.SalesQuery{})

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("erro do cliente e repassado", func(t *testing.T) {
		fetchErr := &domain.FetchError{URL: "http://x", StatusCode: 500}
		service := New(&fakeClient{err: fetchErr})

		_, err := service.GetSales(context.Background(), domain.SalesQuery{})

		assert.True(t, errors.Is(err, domain.ErrFetch))
	})

	tests := []struct {
		name  string
		edit  func(s *salesdomain.Sale)
		field string
	}{
		{"sem data", func(s *salesdomain.Sale) { s.PurchaseDate = nil }, salesdomain.FieldPurchaseDate},
		{"data em formato errado", func(s *salesdomain.Sale) { s.PurchaseDate = strPtr("2021-03-15") }, salesdomain.FieldPurchaseDate},
		{"sem preco", func(s *salesdomain.Sale) { s.Price = nil }, salesdomain.FieldPrice},
		{"sem categoria", func(s *salesdomain.Sale) { s.Category = nil }, salesdomain.FieldCategory},
		{"sem vendedor", func(s *salesdomain.Sale) { s.Seller = nil }, salesdomain.FieldSeller},
		{"sem estado", func(s *salesdomain.Sale) { s.State = nil }, salesdomain.FieldState},
		{"sem lat", func(s *salesdomain.Sale) { s.Lat = nil }, salesdomain.FieldLat},
		{"sem lon", func(s *salesdomain.Sale) { s.Lon = nil }, salesdomain.FieldLon},
	}

	for _, tt := range tests {
		t.Run("registro invalido: "+tt.name, func(t *testing.T) {
			bad := validSale()
			tt.edit(&bad)
			service := New(&fakeClient{resp: salesclient.SalesConsultationResponse{validSale(), bad}})

			records, err := service.GetSales(context.Background(), domain.SalesQuery{})

			assert.Nil(t, records)
			require.True(t, errors.Is(err, domain.ErrParse))
			var parseErr *domain.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, 1, parseErr.Index)
			assert.Equal(t, tt.field, parseErr.Field)
		})
	}
}

func TestSalesService_CheckConnection(t *testing.T) {
	client := &fakeClient{resp: salesclient.SalesConsultationResponse{validSale(), validSale()}}

	count, err := New(client).CheckConnection(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, salesclient.SalesConsultationParams{}, client.params)
}
