package enums

// OrderStatus tracks the lifecycle of an order header.
type OrderStatus string

const (
	OrderStatusSale     OrderStatus = "sale"
	OrderStatusCanceled OrderStatus = "canceled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusSale, OrderStatusCanceled:
		return true
	}
	return false
}
