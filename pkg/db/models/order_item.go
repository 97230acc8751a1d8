package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one product line within an order header. Price is what the
// customer pays; Price1/Price2 carry the list price for the back office.
type OrderItem struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderNumber int64           `gorm:"column:order_number;not null;index" json:"orderNumber"`
	ProductCode int             `gorm:"column:product_code;not null" json:"productCode"`
	Qty         int             `gorm:"column:qty;not null" json:"qty"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Price1      decimal.Decimal `gorm:"column:price1;type:numeric(12,2);not null" json:"price1"`
	Price2      decimal.Decimal `gorm:"column:price2;type:numeric(12,2);not null" json:"price2"`
	Situation   string          `gorm:"column:situation;not null;default:'000'" json:"situation"`
	Brand       string          `gorm:"column:brand" json:"brand"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
}
