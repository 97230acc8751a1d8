package models

import "github.com/shopspring/decimal"

// Company holds storefront-wide settings maintained by the back office.
type Company struct {
	ID                  int             `gorm:"column:id;primaryKey" json:"id"`
	Name                string          `gorm:"column:name;not null" json:"name"`
	FreeShippingMinimum decimal.Decimal `gorm:"column:free_shipping_minimum;type:numeric(12,2);not null" json:"freeShippingMinimum"`
}
