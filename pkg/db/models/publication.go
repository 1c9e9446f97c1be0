package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentora/rentora-backend/pkg/enums"
)

// Publication is a listing composed from a property, an image, and the
// posting user. Soft-deleted by moving Status to inactive.
type Publication struct {
	ID                  uint                    `gorm:"column:id;primaryKey;autoIncrement"`
	PropertyID          uint                    `gorm:"column:property_id;not null"`
	Property            *Property               `gorm:"foreignKey:PropertyID"`
	ImageID             uint                    `gorm:"column:image_id;not null"`
	Image               *Image                  `gorm:"foreignKey:ImageID"`
	UserID              uint                    `gorm:"column:user_id;not null"`
	User                *User                   `gorm:"foreignKey:UserID"`
	Title               string                  `gorm:"column:title;size:100;not null"`
	Description         string                  `gorm:"column:description;size:500"`
	PriceShown          decimal.Decimal         `gorm:"column:price_shown;type:numeric(10,2);not null"`
	PublicationStatusID *int                    `gorm:"column:publication_status_id"`
	PublishDate         time.Time               `gorm:"column:publish_date"`
	ExpiryDate          *time.Time              `gorm:"column:expiry_date"`
	Status              enums.PublicationStatus `gorm:"column:status;size:20;not null;default:'active'"`
	CreatedAt           time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

func (Publication) TableName() string { return "publication" }
