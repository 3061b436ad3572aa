package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos do painel
var (
	// Erros de validação dos filtros
	ErrInvalidRegion     = errors.New("invalid region")
	ErrInvalidYear       = errors.New("invalid year")
	ErrInvalidTopSellers = errors.New("invalid top sellers count")

	ErrChartNotFound = errors.New("chart not found")
)

// DashboardError é um erro com o código da API e detalhes para o cliente
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
