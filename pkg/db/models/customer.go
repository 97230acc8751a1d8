package models

import "time"

// Customer is the storefront identity orders reference.
type Customer struct {
	Code      int       `gorm:"column:code;primaryKey" json:"code"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
