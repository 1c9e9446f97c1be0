package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/internal/users"
	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/visibility"
)

// Service defines the behavior needed by the properties controller.
type Service interface {
	List(ctx context.Context, level visibility.Level) ([]PropertyDTO, error)
	Create(ctx context.Context, req CreateRequest) (*PropertyDTO, error)
	Patch(ctx context.Context, req PatchRequest) (*PropertyDTO, error)
	Deactivate(ctx context.Context, req DeactivateRequest) (*PropertyDTO, error)
}

type repository interface {
	ListAll(ctx context.Context) ([]models.Property, error)
	ListActive(ctx context.Context) ([]models.Property, error)
}

type service struct {
	repo repository
	db   *db.Client
}

// ServiceParams bundles the dependencies required to build a properties service.
type ServiceParams struct {
	Repo repository
	DB   *db.Client
}

// NewService constructs a properties service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("properties repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{repo: params.Repo, db: params.DB}, nil
}

// CreateRequest carries the admin payload for a new property.
type CreateRequest struct {
	Address          string          `json:"address" validate:"required,max=255"`
	Rooms            int             `json:"rooms" validate:"min=0"`
	Bathrooms        int             `json:"bathrooms" validate:"min=0"`
	GarageCapacity   *int            `json:"garage_capacity,omitempty"`
	YearBuilt        *int            `json:"year_built,omitempty"`
	PropertyStatusID *int            `json:"property_status_id,omitempty"`
	MonthlyRent      decimal.Decimal `json:"monthly_rent" validate:"required"`
	OwnerID          uint            `json:"owner_id" validate:"required"`
}

// PatchRequest updates a property. Only non-nil fields are written; id and
// owner_id are never patchable.
type PatchRequest struct {
	ID               uint             `json:"id" validate:"required"`
	Address          *string          `json:"address,omitempty" validate:"omitempty,max=255"`
	Rooms            *int             `json:"rooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms        *int             `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	GarageCapacity   *int             `json:"garage_capacity,omitempty"`
	YearBuilt        *int             `json:"year_built,omitempty"`
	PropertyStatusID *int             `json:"property_status_id,omitempty"`
	MonthlyRent      *decimal.Decimal `json:"monthly_rent,omitempty"`
	Active           *bool            `json:"active,omitempty"`
}

// DeactivateRequest names the property to soft delete.
type DeactivateRequest struct {
	ID uint `json:"id" validate:"required"`
}

func (s *service) List(ctx context.Context, level visibility.Level) ([]PropertyDTO, error) {
	var (
		rows []models.Property
		err  error
	)
	if level.AtLeast(visibility.Admin) {
		rows, err = s.repo.ListAll(ctx)
	} else {
		rows, err = s.repo.ListActive(ctx)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list properties")
	}
	return FromModels(rows), nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*PropertyDTO, error) {
	if strings.TrimSpace(req.Address) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}
	if req.MonthlyRent.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "monthly_rent must not be negative")
	}

	var created *models.Property
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)
		if _, err := userRepo.FindByID(ctx, req.OwnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "owner not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup owner")
		}

		property := &models.Property{
			Address:          strings.TrimSpace(req.Address),
			Rooms:            req.Rooms,
			Bathrooms:        req.Bathrooms,
			GarageCapacity:   req.GarageCapacity,
			YearBuilt:        req.YearBuilt,
			PropertyStatusID: req.PropertyStatusID,
			MonthlyRent:      req.MonthlyRent,
			OwnerID:          req.OwnerID,
			Active:           true,
		}
		persisted, err := NewRepository(tx).Create(ctx, property)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create property")
		}
		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(created), nil
}

func (s *service) Patch(ctx context.Context, req PatchRequest) (*PropertyDTO, error) {
	cols := map[string]any{}
	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "address must not be empty")
		}
		cols["address"] = strings.TrimSpace(*req.Address)
	}
	if req.Rooms != nil {
		cols["rooms"] = *req.Rooms
	}
	if req.Bathrooms != nil {
		cols["bathrooms"] = *req.Bathrooms
	}
	if req.GarageCapacity != nil {
		cols["garage_capacity"] = *req.GarageCapacity
	}
	if req.YearBuilt != nil {
		cols["year_built"] = *req.YearBuilt
	}
	if req.PropertyStatusID != nil {
		cols["property_status_id"] = *req.PropertyStatusID
	}
	if req.MonthlyRent != nil {
		if req.MonthlyRent.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "monthly_rent must not be negative")
		}
		cols["monthly_rent"] = *req.MonthlyRent
	}
	if req.Active != nil {
		cols["active"] = *req.Active
	}

	var updated *models.Property
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByID(ctx, req.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup property")
		}

		if len(cols) > 0 {
			if err := repo.UpdateColumns(ctx, req.ID, cols); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update property")
			}
		}

		fresh, err := repo.FindByID(ctx, req.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload property")
		}
		updated = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) Deactivate(ctx context.Context, req DeactivateRequest) (*PropertyDTO, error) {
	var updated *models.Property
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		property, err := repo.FindByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup property")
		}

		// Repeating a deactivate is a no-op, not an error.
		if property.Active {
			if err := repo.SetActive(ctx, property.ID, false); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate property")
			}
			property.Active = false
		}
		updated = property
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}
