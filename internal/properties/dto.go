package properties

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentora/rentora-backend/pkg/db/models"
)

// PropertyDTO is the transport shape for a property record.
type PropertyDTO struct {
	ID               uint            `json:"id"`
	Address          string          `json:"address"`
	Rooms            int             `json:"rooms"`
	Bathrooms        int             `json:"bathrooms"`
	GarageCapacity   *int            `json:"garage_capacity,omitempty"`
	YearBuilt        *int            `json:"year_built,omitempty"`
	PropertyStatusID *int            `json:"property_status_id,omitempty"`
	MonthlyRent      decimal.Decimal `json:"monthly_rent"`
	OwnerID          uint            `json:"owner_id"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromModel(p *models.Property) *PropertyDTO {
	if p == nil {
		return nil
	}
	return &PropertyDTO{
		ID:               p.ID,
		Address:          p.Address,
		Rooms:            p.Rooms,
		Bathrooms:        p.Bathrooms,
		GarageCapacity:   p.GarageCapacity,
		YearBuilt:        p.YearBuilt,
		PropertyStatusID: p.PropertyStatusID,
		MonthlyRent:      p.MonthlyRent,
		OwnerID:          p.OwnerID,
		Active:           p.Active,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromModels(rows []models.Property) []PropertyDTO {
	out := make([]PropertyDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
