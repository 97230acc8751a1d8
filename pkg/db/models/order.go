package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/enums"
)

// Order is the checkout header row. The number comes from the shared order
// sequence, never from an auto-increment column.
type Order struct {
	OrderNumber     int64             `gorm:"column:order_number;primaryKey" json:"orderNumber"`
	PlacedOn        time.Time         `gorm:"column:placed_on;not null" json:"placedOn"`
	Kind            enums.OrderKind   `gorm:"column:kind;not null" json:"kind"`
	CustomerCode    int               `gorm:"column:customer_code;not null" json:"customerCode"`
	SalespersonCode int               `gorm:"column:salesperson_code;not null;default:0" json:"salespersonCode"`
	Notes           string            `gorm:"column:notes" json:"notes"`
	PriceTier       int               `gorm:"column:price_tier;not null;default:1" json:"priceTier"`
	Status          enums.OrderStatus `gorm:"column:status;not null" json:"status"`
	FreightTerm     enums.FreightTerm `gorm:"column:freight_term;not null" json:"freightTerm"`
	ShippingCost    decimal.Decimal   `gorm:"column:shipping_cost;type:numeric(12,2);not null" json:"shippingCost"`
	Ecommerce       bool              `gorm:"column:ecommerce;not null;default:true" json:"ecommerce"`
	Items           []OrderItem       `gorm:"foreignKey:OrderNumber;references:OrderNumber" json:"items,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
