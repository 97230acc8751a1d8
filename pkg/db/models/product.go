package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product mirrors the legacy catalog row. Codes are the legacy integer
// identifiers, not surrogate keys.
type Product struct {
	Code          int             `gorm:"column:code;primaryKey" json:"code"`
	Name          string          `gorm:"column:name;not null" json:"name"`
	Price1        decimal.Decimal `gorm:"column:price1;type:numeric(12,2);not null" json:"price1"`
	Stock         int             `gorm:"column:stock;not null;default:0" json:"stock"`
	ReservedStock int             `gorm:"column:reserved_stock;not null;default:0" json:"reservedStock"`
	Tags          pq.StringArray  `gorm:"column:tags;type:text[]" json:"tags"`
	IsActive      bool            `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// AvailableStock is the sellable quantity after provisional allocations.
func (p Product) AvailableStock() int {
	avail := p.Stock - p.ReservedStock
	if avail < 0 {
		return 0
	}
	return avail
}
