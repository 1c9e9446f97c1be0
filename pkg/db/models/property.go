package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a rentable unit. Rows are soft-deleted by flipping Active.
type Property struct {
	ID               uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Address          string          `gorm:"column:address;size:255;not null"`
	Rooms            int             `gorm:"column:rooms;not null"`
	Bathrooms        int             `gorm:"column:bathrooms;not null"`
	GarageCapacity   *int            `gorm:"column:garage_capacity"`
	YearBuilt        *int            `gorm:"column:year_built"`
	PropertyStatusID *int            `gorm:"column:property_status_id"`
	MonthlyRent      decimal.Decimal `gorm:"column:monthly_rent;type:numeric(10,2);not null"`
	OwnerID          uint            `gorm:"column:owner_id;not null"`
	Owner            *User           `gorm:"foreignKey:OwnerID"`
	// No gorm default tag: a default would make GORM omit a false value from
	// the INSERT and the row would come back active.
	Active           bool            `gorm:"column:active;not null"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Property) TableName() string { return "property" }
