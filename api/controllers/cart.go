package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/NonattoDev/ecommercesoftline-backend/api/middleware"
	"github.com/NonattoDev/ecommercesoftline-backend/api/responses"
	"github.com/NonattoDev/ecommercesoftline-backend/api/validators"
	cartsvc "github.com/NonattoDev/ecommercesoftline-backend/internal/cart"
	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
)

type cartResponse struct {
	Items    []cartsvc.LineItem `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Warning  *cartsvc.Warning   `json:"warning,omitempty"`
}

func newCartResponse(cart cartsvc.Cart, warning *cartsvc.Warning) cartResponse {
	items := cart.Items
	if items == nil {
		items = []cartsvc.LineItem{}
	}
	return cartResponse{
		Items:    items,
		Subtotal: cart.Subtotal(),
		Warning:  warning,
	}
}

func cartIdentity(r *http.Request) (string, error) {
	code := middleware.CustomerCodeFromContext(r.Context())
	if code <= 0 {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "customer identity missing")
	}
	return strconv.Itoa(code), nil
}

// CartFetch returns the caller's persisted cart.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Load(r.Context(), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart, nil))
	}
}

type addCartItemRequest struct {
	Code     int `json:"code" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartAdd merges a product into the caller's cart. Name, price and stock come
// from the catalog, never from the client.
func CartAdd(svc cartsvc.Service, catalog ProductCatalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalog.FindByCode(r.Context(), payload.Code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !product.IsActive {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product is not for sale"))
			return
		}

		item := cartsvc.LineItem{
			Code:     product.Code,
			Name:     product.Name,
			Price:    product.Price1,
			Quantity: payload.Quantity,
			Stock:    product.AvailableStock(),
		}

		cart, warning, err := svc.Add(r.Context(), customerID, item)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart, warning))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartUpdateItem sets the quantity of a line already in the cart.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		code, err := validators.ParsePathInt(chi.URLParam(r, "code"), "code")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, warning, err := svc.UpdateQuantity(r.Context(), customerID, code, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart, warning))
	}
}

// CartRemoveItem drops one line from the cart.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		code, err := validators.ParsePathInt(chi.URLParam(r, "code"), "code")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Remove(r.Context(), customerID, code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cart, nil))
	}
}

// CartClear empties the caller's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), customerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(cartsvc.Cart{}, nil))
	}
}
