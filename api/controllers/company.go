package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/NonattoDev/ecommercesoftline-backend/api/responses"
	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
)

// ShippingSettings exposes the storefront-wide shipping policy.
type ShippingSettings interface {
	FreeShippingMinimum(ctx context.Context) (decimal.Decimal, error)
}

type shippingResponse struct {
	FreeShippingMinimum decimal.Decimal `json:"free_shipping_minimum"`
}

// CompanyShipping serves the free-shipping threshold the storefront shows at
// the cart.
func CompanyShipping(settings ShippingSettings, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if settings == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings unavailable"))
			return
		}

		minimum, err := settings.FreeShippingMinimum(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shippingResponse{FreeShippingMinimum: minimum})
	}
}
