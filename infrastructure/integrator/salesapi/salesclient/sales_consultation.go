package salesclient

import (
	"context"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	salesdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita o trecho do corpo anexado ao erro de status
const maxErrorBody = 512

type SalesConsultationParams struct {
	Region string
	Year   string
}

type SalesConsultationResponse []salesdomain.Sale

// GetSales faz um único GET com os parâmetros regiao e ano. Vazio significa sem filtro.
func (c *SalesClient) GetSales(ctx context.Context, params SalesConsultationParams) (SalesConsultationResponse, error) {
	var response SalesConsultationResponse

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return response, &domain.FetchError{URL: c.baseURL, Err: errors.Wrap(err, "erro ao analisar a URL base")}
	}

	// Os dois parâmetros sempre vão na URL, mesmo vazios
	query := endpoint.Query()
	query.Set("regiao", params.Region)
	query.Set("ano", params.Year)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, &domain.FetchError{URL: endpoint.String(), Err: errors.Wrap(err, "erro ao criar a requisição")}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, &domain.FetchError{URL: endpoint.String(), Err: errors.Wrap(err, "erro ao executar a requisição")}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return response, &domain.FetchError{
			URL:        endpoint.String(),
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("requisição falhou com status: %s: %s", resp.Status, body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &domain.ParseError{Index: -1, Err: errors.Wrap(err, "erro ao decodificar a resposta")}
	}

	return response, nil
}
