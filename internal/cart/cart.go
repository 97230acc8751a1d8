package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product-and-quantity entry in a cart. Stock is the ceiling
// quantities are clamped against; it is captured from the catalog when the
// item is added.
type LineItem struct {
	Code     int             `json:"code" validate:"required,gt=0"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Stock    int             `json:"stock" validate:"gte=0"`
}

// Cart is the ordered collection of line items for one customer. Product codes
// are unique within a cart; insertion order is preserved.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Subtotal sums price times quantity across all lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Warning is a non-fatal notice returned alongside a successful mutation, the
// server-side counterpart of the storefront's toast.
type Warning struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	ProductCode int    `json:"productCode"`
}

// WarningStockClamped signals that a requested quantity exceeded the stock
// ceiling and was reduced to it.
const WarningStockClamped = "stock_clamped"

func stockClampedWarning(productCode int) *Warning {
	return &Warning{
		Code:        WarningStockClamped,
		Message:     "requested quantity exceeds available stock; the quantity was reduced",
		ProductCode: productCode,
	}
}
