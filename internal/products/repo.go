package products

import (
	"context"

	"github.com/NonattoDev/ecommercesoftline-backend/internal/repo"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes catalog reads and the reserved-stock update used by
// checkout.
type Repository struct {
	base repo.Base
}

// NewRepository constructs a product repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{base: r.base.Bind(tx)}
}

// FindByCode loads one product by its legacy code.
func (r *Repository) FindByCode(ctx context.Context, code int) (*models.Product, error) {
	var product models.Product
	if err := r.base.DB(ctx).
		Where("code = ?", code).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns active products ordered by code, one page at a time.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Product, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}

	query := r.base.DB(ctx).
		Where("is_active = ?", true).
		Order("code ASC").
		Limit(pagination.LimitWithBuffer(params.Limit))
	if cursor != nil {
		query = query.Where("code > ?", cursor.Code)
	}

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	limit := pagination.NormalizeLimit(params.Limit)
	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		next = pagination.EncodeCursor(pagination.Cursor{Code: rows[len(rows)-1].Code})
	}
	return rows, next, nil
}

// IncrementReservedStock bumps the provisional allocation for a product.
// Callers run it inside the checkout transaction. An unknown code surfaces
// gorm.ErrRecordNotFound so the transaction fails instead of reserving
// nothing.
func (r *Repository) IncrementReservedStock(ctx context.Context, code, qty int) error {
	res := r.base.DB(ctx).
		Model(&models.Product{}).
		Where("code = ?", code).
		Update("reserved_stock", gorm.Expr("reserved_stock + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
