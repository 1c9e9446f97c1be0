package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract binds a renter, an owner, and a property for a rental period.
// Created only after all three references are verified to exist.
type Contract struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement"`
	PropertyID  uint            `gorm:"column:property_id;not null"`
	Property    *Property       `gorm:"foreignKey:PropertyID"`
	RenterID    uint            `gorm:"column:renter_id;not null"`
	Renter      *User           `gorm:"foreignKey:RenterID"`
	OwnerID     uint            `gorm:"column:owner_id;not null"`
	Owner       *User           `gorm:"foreignKey:OwnerID"`
	StartDate   time.Time       `gorm:"column:start_date;not null"`
	EndDate     time.Time       `gorm:"column:end_date;not null"`
	MonthlyRent decimal.Decimal `gorm:"column:monthly_rent;type:numeric(10,2);not null"`
	// No gorm default tag: a default would make GORM omit a false value from
	// the INSERT and the contract would persist as active.
	Status      bool            `gorm:"column:status;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Contract) TableName() string { return "contract" }
