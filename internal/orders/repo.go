package orders

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/NonattoDev/ecommercesoftline-backend/internal/repo"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
)

// Repository writes order headers and items. All writes are expected to run
// inside the checkout transaction via WithTx.
type Repository struct {
	base repo.Base
}

// NewRepository constructs an order repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{base: r.base.Bind(tx)}
}

// NextOrderNumber advances the shared sequence and returns the new value. The
// increment and read happen in one statement so concurrent checkouts each get
// a distinct number.
func (r *Repository) NextOrderNumber(ctx context.Context) (int64, error) {
	var next int64
	err := r.base.DB(ctx).
		Raw("UPDATE order_sequence SET value = value + 1 WHERE name = ? RETURNING value", models.OrderSequenceName).
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("advancing order sequence: %w", err)
	}
	if next == 0 {
		return 0, fmt.Errorf("order sequence row %q is missing", models.OrderSequenceName)
	}
	return next, nil
}

// CreateOrder inserts the header row.
func (r *Repository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.base.DB(ctx).Create(order).Error
}

// CreateItems inserts the item rows for an order.
func (r *Repository) CreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.base.DB(ctx).Create(&items).Error
}

// FindByNumber loads one order with its items.
func (r *Repository) FindByNumber(ctx context.Context, number int64) (*models.Order, error) {
	var order models.Order
	if err := r.base.DB(ctx).
		Preload("Items").
		Where("order_number = ?", number).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
