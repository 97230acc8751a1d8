package models

// OrderSequence is the shared counter handing out order numbers. A single row
// per name; the value is advanced with an atomic UPDATE ... RETURNING so
// concurrent checkouts never collide.
type OrderSequence struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value;not null"`
}

// OrderSequenceName is the row used for storefront checkouts.
const OrderSequenceName = "order"

func (OrderSequence) TableName() string {
	return "order_sequence"
}
