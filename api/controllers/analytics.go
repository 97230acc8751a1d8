package controllers

import (
	"net/http"
	"strings"

	"github.com/NonattoDev/ecommercesoftline-backend/api/responses"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/analytics"
	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
)

type salespeopleResponse struct {
	Start string                       `json:"start"`
	End   string                       `json:"end"`
	Rows  []analytics.SalespersonSales `json:"rows"`
}

// AnalyticsSalespeople serves the per-salesperson sale counts for the
// dashboard range.
func AnalyticsSalespeople(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		start := strings.TrimSpace(r.URL.Query().Get("start"))
		end := strings.TrimSpace(r.URL.Query().Get("end"))

		rows, err := svc.SalesBySalesperson(r.Context(), start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if rows == nil {
			rows = []analytics.SalespersonSales{}
		}

		responses.WriteSuccess(w, salespeopleResponse{Start: start, End: end, Rows: rows})
	}
}
