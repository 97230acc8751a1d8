package cart

import (
	"context"
	"fmt"

	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
)

// Service exposes cart operations. Every operation takes the customer identity
// explicitly; snapshots for one identity are never visible to another.
// Mutations performed without an identity operate on the in-memory cart only
// and are not persisted.
type Service interface {
	Load(ctx context.Context, customerID string) (Cart, error)
	Add(ctx context.Context, customerID string, item LineItem) (Cart, *Warning, error)
	UpdateQuantity(ctx context.Context, customerID string, productCode, quantity int) (Cart, *Warning, error)
	Remove(ctx context.Context, customerID string, productCode int) (Cart, error)
	Clear(ctx context.Context, customerID string) error
}

type service struct {
	store SnapshotStore
}

// NewService builds a cart service backed by the provided snapshot store.
func NewService(store SnapshotStore) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	return &service{store: store}, nil
}

// Load restores the most recent snapshot for the identity, or an empty cart.
func (s *service) Load(ctx context.Context, customerID string) (Cart, error) {
	if customerID == "" {
		return Cart{}, nil
	}
	items, _, err := s.store.Load(ctx, customerID)
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}
	return Cart{Items: items}, nil
}

// Add merges the item into the cart. When the product is already present the
// quantity becomes min(existing+new, stock); a fresh item is appended at the
// end, clamped the same way. The warning is non-nil iff the requested total
// exceeded the stock ceiling.
func (s *service) Add(ctx context.Context, customerID string, item LineItem) (Cart, *Warning, error) {
	if err := validateLineItem(item); err != nil {
		return Cart{}, nil, err
	}

	cart, err := s.Load(ctx, customerID)
	if err != nil {
		return Cart{}, nil, err
	}

	var warning *Warning
	merged := false
	for i, existing := range cart.Items {
		if existing.Code != item.Code {
			continue
		}
		requested := existing.Quantity + item.Quantity
		if requested > existing.Stock {
			warning = stockClampedWarning(item.Code)
			requested = existing.Stock
		}
		cart.Items[i].Quantity = requested
		merged = true
		break
	}

	if !merged {
		if item.Quantity > item.Stock {
			warning = stockClampedWarning(item.Code)
			item.Quantity = item.Stock
		}
		cart.Items = append(cart.Items, item)
	}

	if err := s.persist(ctx, customerID, cart); err != nil {
		return Cart{}, nil, err
	}
	return cart, warning, nil
}

// UpdateQuantity sets the quantity of an existing line, clamped against the
// stock ceiling like Add. A product code not in the cart is a no-op.
func (s *service) UpdateQuantity(ctx context.Context, customerID string, productCode, quantity int) (Cart, *Warning, error) {
	if quantity <= 0 {
		return Cart{}, nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	cart, err := s.Load(ctx, customerID)
	if err != nil {
		return Cart{}, nil, err
	}

	var warning *Warning
	changed := false
	for i, existing := range cart.Items {
		if existing.Code != productCode {
			continue
		}
		next := quantity
		if next > existing.Stock {
			warning = stockClampedWarning(productCode)
			next = existing.Stock
		}
		cart.Items[i].Quantity = next
		changed = true
		break
	}

	if changed {
		if err := s.persist(ctx, customerID, cart); err != nil {
			return Cart{}, nil, err
		}
	}
	return cart, warning, nil
}

// Remove deletes the matching line item; absent codes leave the cart unchanged.
func (s *service) Remove(ctx context.Context, customerID string, productCode int) (Cart, error) {
	cart, err := s.Load(ctx, customerID)
	if err != nil {
		return Cart{}, err
	}

	kept := cart.Items[:0]
	removed := false
	for _, existing := range cart.Items {
		if existing.Code == productCode {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	cart.Items = kept

	if removed {
		if err := s.persist(ctx, customerID, cart); err != nil {
			return Cart{}, err
		}
	}
	return cart, nil
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *service) Clear(ctx context.Context, customerID string) error {
	if customerID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, customerID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart snapshot")
	}
	return nil
}

func (s *service) persist(ctx context.Context, customerID string, cart Cart) error {
	if customerID == "" {
		return nil
	}
	if err := s.store.Save(ctx, customerID, cart.Items); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart snapshot")
	}
	return nil
}

func validateLineItem(item LineItem) error {
	if item.Code <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product code is required")
	}
	if item.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if item.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if item.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}
	if item.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	return nil
}
