package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/NonattoDev/ecommercesoftline-backend/api/middleware"
	"github.com/NonattoDev/ecommercesoftline-backend/api/responses"
	"github.com/NonattoDev/ecommercesoftline-backend/api/validators"
	cartsvc "github.com/NonattoDev/ecommercesoftline-backend/internal/cart"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/orders"
	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
)

// Confirmation texts shown by the storefront after checkout.
const (
	saleCompletedMessage    = "Venda concluída com sucesso"
	proposalReceivedMessage = "Vendedor recebeu a proposta"
)

type checkoutResponse struct {
	Message     string `json:"message"`
	OrderNumber int64  `json:"order_number"`
}

type checkoutItemPayload struct {
	ReferenceID int             `json:"reference_id" validate:"required,gt=0"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitAmount  int64           `json:"unit_amount" validate:"required,gt=0"`
	ListPrice   decimal.Decimal `json:"list_price"`
}

type checkoutCardRequest struct {
	SalespersonCode int                   `json:"salesperson_code" validate:"gte=0"`
	ShippingCost    decimal.Decimal       `json:"shipping_cost"`
	Notes           string                `json:"notes"`
	Items           []checkoutItemPayload `json:"items" validate:"required,min=1,dive"`
}

// CheckoutCard finalizes a card payment the gateway already authorized. The
// persisted cart is cleared once the order lands.
func CheckoutCard(svc orders.Service, cartService cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutCardRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := orders.FinalizeSaleInput{
			CustomerCode:    middleware.CustomerCodeFromContext(r.Context()),
			SalespersonCode: payload.SalespersonCode,
			ShippingCost:    payload.ShippingCost,
			Notes:           payload.Notes,
			Items:           make([]orders.GatewayItem, len(payload.Items)),
		}
		for i, item := range payload.Items {
			input.Items[i] = orders.GatewayItem{
				ReferenceID: item.ReferenceID,
				Quantity:    item.Quantity,
				UnitAmount:  item.UnitAmount,
				ListPrice:   item.ListPrice,
			}
		}

		number, err := svc.FinalizeSale(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clearCart(r, cartService, customerID, logg)

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			Message:     saleCompletedMessage,
			OrderNumber: number,
		})
	}
}

type proposalLinePayload struct {
	Code     int             `json:"code" validate:"required,gt=0"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

type checkoutProposalRequest struct {
	SalespersonCode int                   `json:"salesperson_code" validate:"gte=0"`
	ShippingCost    decimal.Decimal       `json:"shipping_cost"`
	Notes           string                `json:"notes"`
	Lines           []proposalLinePayload `json:"lines" validate:"required,min=1,dive"`
}

// CheckoutProposal submits the cart to a salesperson for negotiation instead
// of charging it.
func CheckoutProposal(svc orders.Service, cartService cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		customerID, err := cartIdentity(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutProposalRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := orders.ProposalInput{
			CustomerCode:    middleware.CustomerCodeFromContext(r.Context()),
			SalespersonCode: payload.SalespersonCode,
			ShippingCost:    payload.ShippingCost,
			Notes:           payload.Notes,
			Lines:           make([]orders.ProposalLine, len(payload.Lines)),
		}
		for i, line := range payload.Lines {
			input.Lines[i] = orders.ProposalLine{
				ProductCode: line.Code,
				Quantity:    line.Quantity,
				Price:       line.Price,
			}
		}

		number, err := svc.SubmitProposal(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clearCart(r, cartService, customerID, logg)

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			Message:     proposalReceivedMessage,
			OrderNumber: number,
		})
	}
}

// clearCart is best effort; the order is already committed, so a snapshot
// cleanup failure only logs.
func clearCart(r *http.Request, cartService cartsvc.Service, customerID string, logg *logger.Logger) {
	if cartService == nil {
		return
	}
	if err := cartService.Clear(r.Context(), customerID); err != nil && logg != nil {
		logg.Warn(logg.WithField(r.Context(), "customer_id", customerID), "cart snapshot cleanup failed")
	}
}
