package models

// Salesperson identifies who handled a sale; the dashboard groups sale counts
// by this row.
type Salesperson struct {
	Code int    `gorm:"column:code;primaryKey" json:"code"`
	Name string `gorm:"column:name;not null" json:"name"`
}

func (Salesperson) TableName() string {
	return "salespersons"
}
