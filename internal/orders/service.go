package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/NonattoDev/ecommercesoftline-backend/internal/products"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/enums"
	pkgerrors "github.com/NonattoDev/ecommercesoftline-backend/pkg/errors"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
)

// ecommerceBrand marks storefront lines for the back office item reports.
const ecommerceBrand = "*"

// defaultProposalNotes is stamped on proposals submitted without a message.
const defaultProposalNotes = "cart submitted through the storefront for negotiation"

// Service persists checkouts. Both operations claim the next order number and
// write header plus items in a single transaction; a failure anywhere leaves
// the sequence, the order tables and the reserved stock untouched.
type Service interface {
	FinalizeSale(ctx context.Context, input FinalizeSaleInput) (int64, error)
	SubmitProposal(ctx context.Context, input ProposalInput) (int64, error)
}

type service struct {
	client   *db.Client
	repo     *Repository
	products *products.Repository
	logg     *logger.Logger
	now      func() time.Time
}

// NewService wires the order service.
func NewService(client *db.Client, repository *Repository, productsRepo *products.Repository, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repository == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if productsRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{
		client:   client,
		repo:     repository,
		products: productsRepo,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// FinalizeSale records a gateway-authorized card checkout: the next order
// number, a sale header, one item per charged line priced from the gateway
// amount, and a reserved-stock bump per product.
func (s *service) FinalizeSale(ctx context.Context, input FinalizeSaleInput) (int64, error) {
	if err := input.validate(); err != nil {
		return 0, err
	}

	var orderNumber int64
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)
		productRepo := s.products.WithTx(tx)

		number, err := orderRepo.NextOrderNumber(ctx)
		if err != nil {
			return err
		}

		header := models.Order{
			OrderNumber:     number,
			PlacedOn:        placementDay(s.now()),
			Kind:            enums.OrderKindOrder,
			CustomerCode:    input.CustomerCode,
			SalespersonCode: input.SalespersonCode,
			Notes:           input.Notes,
			PriceTier:       1,
			Status:          enums.OrderStatusSale,
			FreightTerm:     enums.FreightTermFor(input.ShippingCost.IsPositive()),
			ShippingCost:    input.ShippingCost,
			Ecommerce:       true,
		}
		if err := orderRepo.CreateOrder(ctx, &header); err != nil {
			return fmt.Errorf("creating order header: %w", err)
		}

		items := make([]models.OrderItem, 0, len(input.Items))
		for _, charged := range input.Items {
			if err := productRepo.IncrementReservedStock(ctx, charged.ReferenceID, charged.Quantity); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown product %d", charged.ReferenceID))
				}
				return fmt.Errorf("reserving stock for product %d: %w", charged.ReferenceID, err)
			}
			items = append(items, models.OrderItem{
				OrderNumber: number,
				ProductCode: charged.ReferenceID,
				Qty:         charged.Quantity,
				Price:       charged.UnitPrice(),
				Price1:      charged.ListPrice,
				Price2:      charged.ListPrice,
				Situation:   "000",
				Brand:       ecommerceBrand,
			})
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return fmt.Errorf("creating order items: %w", err)
		}

		orderNumber = number
		return nil
	})
	if err != nil {
		return 0, asServiceError(err, "finalize sale")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderNumber(ctx, orderNumber), "sale finalized")
	}
	return orderNumber, nil
}

// SubmitProposal records a negotiation proposal with the cart prices taken
// verbatim. No stock is reserved; nothing has been charged yet.
func (s *service) SubmitProposal(ctx context.Context, input ProposalInput) (int64, error) {
	if err := input.validate(); err != nil {
		return 0, err
	}

	notes := input.Notes
	if notes == "" {
		notes = defaultProposalNotes
	}

	var orderNumber int64
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)

		number, err := orderRepo.NextOrderNumber(ctx)
		if err != nil {
			return err
		}

		header := models.Order{
			OrderNumber:     number,
			PlacedOn:        placementDay(s.now()),
			Kind:            enums.OrderKindProposal,
			CustomerCode:    input.CustomerCode,
			SalespersonCode: input.SalespersonCode,
			Notes:           notes,
			PriceTier:       1,
			Status:          enums.OrderStatusSale,
			FreightTerm:     enums.FreightTermFor(input.ShippingCost.IsPositive()),
			ShippingCost:    input.ShippingCost,
			Ecommerce:       true,
		}
		if err := orderRepo.CreateOrder(ctx, &header); err != nil {
			return fmt.Errorf("creating proposal header: %w", err)
		}

		items := make([]models.OrderItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			items = append(items, models.OrderItem{
				OrderNumber: number,
				ProductCode: line.ProductCode,
				Qty:         line.Quantity,
				Price:       line.Price,
				Price1:      line.Price,
				Price2:      line.Price,
				Situation:   "000",
				Brand:       ecommerceBrand,
			})
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return fmt.Errorf("creating proposal items: %w", err)
		}

		orderNumber = number
		return nil
	})
	if err != nil {
		return 0, asServiceError(err, "submit proposal")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderNumber(ctx, orderNumber), "proposal submitted")
	}
	return orderNumber, nil
}

// placementDay truncates the timestamp to the calendar day in UTC; the
// dashboard ranges compare whole days.
func placementDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func asServiceError(err error, op string) error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	// A duplicate order number means the sequence row fell behind the
	// orders table, usually after a manual restore.
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, op)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
