package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("erro ao escrever resposta JSON")
	}
}

// writeServiceError registra o erro uma única vez e responde no envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := dashboard.ErrorCode(err)
	apiErr := apiErrors.FromError(err, code)

	var dashboardErr *dashboard.DashboardError
	if errors.As(err, &dashboardErr) {
		apiErr.Message = dashboardErr.Err.Error()
		apiErr.Details = dashboardErr.Details
	}

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"code":  code,
		"error": err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(op + ": falha ao montar o painel")
	} else {
		logger.Warn(op + ": requisição inválida")
	}

	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
