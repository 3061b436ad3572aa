package salesclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type Client interface {
	GetSales(ctx context.Context, params SalesConsultationParams) (SalesConsultationResponse, error)
}

type SalesClient struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// NewClient cria o cliente HTTP da API de vendas
func NewClient(cfg *config.Config) Client {
	return &SalesClient{
		httpClient: &http.Client{},
		baseURL:    cfg.SalesAPI.URL,
		timeout:    cfg.SalesAPI.Timeout,
	}
}
