package publications

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentora/rentora-backend/internal/images"
	"github.com/rentora/rentora-backend/internal/properties"
	"github.com/rentora/rentora-backend/pkg/db/models"
	"github.com/rentora/rentora-backend/pkg/enums"
)

// PublicationDTO is the full projection served to authenticated callers.
type PublicationDTO struct {
	ID                  uint                     `json:"id"`
	PropertyID          uint                     `json:"property_id"`
	ImageID             uint                     `json:"image_id"`
	UserID              uint                     `json:"user_id"`
	Title               string                   `json:"title"`
	Description         string                   `json:"description,omitempty"`
	PriceShown          decimal.Decimal          `json:"price_shown"`
	PublicationStatusID *int                     `json:"publication_status_id,omitempty"`
	PublishDate         time.Time                `json:"publish_date"`
	ExpiryDate          *time.Time               `json:"expiry_date,omitempty"`
	Status              enums.PublicationStatus  `json:"status"`
	Property            *properties.PropertyDTO  `json:"property,omitempty"`
	Image               *images.ImageDTO         `json:"image,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

// MinimalPublicationDTO is the reduced projection served to anonymous callers.
type MinimalPublicationDTO struct {
	ID          uint      `json:"id"`
	PropertyID  uint      `json:"property_id"`
	ImageURL    string    `json:"image_url,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PublishDate time.Time `json:"publish_date"`
}

func FromModel(p *models.Publication) *PublicationDTO {
	if p == nil {
		return nil
	}
	return &PublicationDTO{
		ID:                  p.ID,
		PropertyID:          p.PropertyID,
		ImageID:             p.ImageID,
		UserID:              p.UserID,
		Title:               p.Title,
		Description:         p.Description,
		PriceShown:          p.PriceShown,
		PublicationStatusID: p.PublicationStatusID,
		PublishDate:         p.PublishDate,
		ExpiryDate:          p.ExpiryDate,
		Status:              p.Status,
		Property:            properties.FromModel(p.Property),
		Image:               images.FromModel(p.Image),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func MinimalFromModel(p *models.Publication) *MinimalPublicationDTO {
	if p == nil {
		return nil
	}
	dto := &MinimalPublicationDTO{
		ID:          p.ID,
		PropertyID:  p.PropertyID,
		Title:       p.Title,
		Description: p.Description,
		PublishDate: p.PublishDate,
	}
	if p.Image != nil {
		dto.ImageURL = p.Image.URL
	}
	return dto
}
