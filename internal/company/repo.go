package company

import (
	"context"
	"errors"

	"github.com/NonattoDev/ecommercesoftline-backend/internal/repo"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository reads storefront-wide settings maintained by the back office.
type Repository struct {
	base repo.Base
}

// NewRepository constructs a company repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// FreeShippingMinimum returns the order subtotal above which shipping is free.
// A missing company row means the storefront never ships for free.
func (r *Repository) FreeShippingMinimum(ctx context.Context) (decimal.Decimal, error) {
	var company models.Company
	err := r.base.DB(ctx).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return company.FreeShippingMinimum, nil
}
