package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/NonattoDev/ecommercesoftline-backend/internal/repo"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/enums"
)

// SalespersonSales is one dashboard row: how many finalized sales a
// salesperson placed inside the window.
type SalespersonSales struct {
	Code  int    `gorm:"column:code" json:"code"`
	Name  string `gorm:"column:name" json:"name"`
	Count int64  `gorm:"column:sales" json:"count"`
}

// Repository runs the dashboard aggregations.
type Repository struct {
	base repo.Base
}

// NewRepository constructs an analytics repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// SalesBetween counts finalized sales per salesperson with both endpoints
// inclusive. Proposals never count; salespeople without sales in the window
// are omitted.
func (r *Repository) SalesBetween(ctx context.Context, start, end time.Time) ([]SalespersonSales, error) {
	rows := []SalespersonSales{}
	err := r.base.DB(ctx).
		Model(&models.Order{}).
		Select("salespersons.code AS code, salespersons.name AS name, COUNT(orders.order_number) AS sales").
		Joins("JOIN salespersons ON salespersons.code = orders.salesperson_code").
		Where("orders.kind = ?", enums.OrderKindOrder).
		Where("orders.placed_on >= ? AND orders.placed_on < ?", start, end.AddDate(0, 0, 1)).
		Group("salespersons.code, salespersons.name").
		Order("sales DESC, salespersons.code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
