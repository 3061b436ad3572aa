package handler

import (
	"bytes"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func GetDashboard(service dashboard.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := parseCriteria(r)
		if err != nil {
			writeServiceError(w, r, "dashboard", err)
			return
		}

		result, err := service.Render(r.Context(), criteria)
		if err != nil {
			writeServiceError(w, r, "dashboard", err)
			return
		}

		logger.WithFields(log.Fields{
			"render_id": result.RenderID,
			"region":    result.Criteria.Region,
			"year":      result.Criteria.Year,
			"records":   result.Summaries.TotalCount,
			"empty":     result.Empty,
		}).Info("dashboard: painel montado")

		writeJSON(w, http.StatusOK, result)
	})
}

// GetChart devolve um gráfico como imagem (svg ou png) ou como especificação JSON
func GetChart(service dashboard.Service, renderer charting.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chartID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger := log.ForContext(r.Context()).WithField("chart_id", chartID)

		formatParam := r.URL.Query().Get(paramFormat)
		asJSON := formatParam == "json"

		var format charting.Format
		if !asJSON {
			var err error
			format, err = charting.ParseFormat(formatParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de gráfico inválido. Valores aceitos: svg, png, json", formatParam)
				return
			}
		}

		criteria, err := parseCriteria(r)
		if err != nil {
			writeServiceError(w, r, "charts", err)
			return
		}

		spec, err := service.Chart(r.Context(), criteria, chartID)
		if err != nil {
			writeServiceError(w, r, "charts", err)
			return
		}

		if asJSON {
			writeJSON(w, http.StatusOK, spec)
			return
		}

		// Desenha em memória para ainda poder responder com erro
		var buf bytes.Buffer
		if err := renderer.Render(spec, format, &buf); err != nil {
			logger.WithError(err).Error("charts: falha ao desenhar o gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao desenhar o gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("charts: erro ao escrever a imagem")
		}
	})
}

func GetSellers(service dashboard.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseCriteria(r)
		if err != nil {
			writeServiceError(w, r, "sellers", err)
			return
		}

		sellers, err := service.Sellers(r.Context(), criteria)
		if err != nil {
			writeServiceError(w, r, "sellers", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"sellers": sellers,
			"total":   len(sellers),
		})
	})
}
