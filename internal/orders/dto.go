package orders

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
)

// GatewayItem is one charged line as echoed back by the payment gateway.
// UnitAmount is the authorized price in minor currency units (cents); the
// persisted price is always derived from it, never from the cart.
type GatewayItem struct {
	ReferenceID int             `json:"reference_id" validate:"required,gt=0"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitAmount  int64           `json:"unit_amount" validate:"required,gt=0"`
	ListPrice   decimal.Decimal `json:"list_price"`
}

// UnitPrice converts the gateway minor units into the major-unit price stored
// on the order item.
func (i GatewayItem) UnitPrice() decimal.Decimal {
	return decimal.New(i.UnitAmount, -2)
}

// FinalizeSaleInput finalizes a card checkout that the gateway already
// authorized.
type FinalizeSaleInput struct {
	CustomerCode    int             `json:"customer_code" validate:"required,gt=0"`
	SalespersonCode int             `json:"salesperson_code" validate:"gte=0"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Notes           string          `json:"notes"`
	Items           []GatewayItem   `json:"items" validate:"required,min=1,dive"`
}

func (in FinalizeSaleInput) validate() error {
	if in.CustomerCode <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer code is required")
	}
	if in.ShippingCost.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping cost cannot be negative")
	}
	if len(in.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	for _, item := range in.Items {
		if item.ReferenceID <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item reference is required")
		}
		if item.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
		if item.UnitAmount <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "item unit amount must be positive")
		}
	}
	return nil
}

// ProposalLine is one cart line carried into a negotiation proposal. The price
// is taken verbatim; no gateway is involved.
type ProposalLine struct {
	ProductCode int             `json:"code" validate:"required,gt=0"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
}

// ProposalInput hands a cart to a salesperson for negotiation.
type ProposalInput struct {
	CustomerCode    int             `json:"customer_code" validate:"required,gt=0"`
	SalespersonCode int             `json:"salesperson_code" validate:"gte=0"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Notes           string          `json:"notes"`
	Lines           []ProposalLine  `json:"lines" validate:"required,min=1,dive"`
}

func (in ProposalInput) validate() error {
	if in.CustomerCode <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer code is required")
	}
	if in.ShippingCost.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping cost cannot be negative")
	}
	if len(in.Lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one line is required")
	}
	for _, line := range in.Lines {
		if line.ProductCode <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "line product code is required")
		}
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive")
		}
		if line.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "line price cannot be negative")
		}
	}
	return nil
}
