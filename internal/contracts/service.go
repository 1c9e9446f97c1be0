package contracts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/internal/properties"
	"github.com/rentora/rentora-backend/internal/users"
	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
)

// Service defines the behavior needed by the contracts controller.
type Service interface {
	List(ctx context.Context) ([]ContractDTO, error)
	Create(ctx context.Context, req CreateRequest) (*ContractDTO, error)
}

type repository interface {
	List(ctx context.Context) ([]models.Contract, error)
}

type service struct {
	repo repository
	db   *db.Client
}

// ServiceParams bundles the dependencies required to build a contracts service.
type ServiceParams struct {
	Repo repository
	DB   *db.Client
}

// NewService constructs a contracts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("contracts repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{repo: params.Repo, db: params.DB}, nil
}

// ContractDTO is the transport shape for a rental contract.
type ContractDTO struct {
	ID          uint            `json:"id"`
	PropertyID  uint            `json:"property_id"`
	RenterID    uint            `json:"renter_id"`
	OwnerID     uint            `json:"owner_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      bool            `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateRequest carries the admin payload for a new contract.
type CreateRequest struct {
	PropertyID  uint            `json:"property_id" validate:"required"`
	RenterID    uint            `json:"renter_id" validate:"required"`
	OwnerID     uint            `json:"owner_id" validate:"required"`
	StartDate   *time.Time      `json:"start_date" validate:"required"`
	EndDate     *time.Time      `json:"end_date" validate:"required"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" validate:"required"`
}

func FromModel(c *models.Contract) *ContractDTO {
	if c == nil {
		return nil
	}
	return &ContractDTO{
		ID:          c.ID,
		PropertyID:  c.PropertyID,
		RenterID:    c.RenterID,
		OwnerID:     c.OwnerID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		MonthlyRent: c.MonthlyRent,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *service) List(ctx context.Context) ([]ContractDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contracts")
	}
	out := make([]ContractDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Create verifies the property and both parties exist before inserting.
func (s *service) Create(ctx context.Context, req CreateRequest) (*ContractDTO, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start_date and end_date are required")
	}
	if req.EndDate.Before(*req.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end_date must not precede start_date")
	}
	if req.MonthlyRent.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "monthly_rent must not be negative")
	}

	var created *models.Contract
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		if _, err := properties.NewRepository(tx).FindByID(ctx, req.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup property")
		}
		if _, err := userRepo.FindByID(ctx, req.RenterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "renter not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup renter")
		}
		if _, err := userRepo.FindByID(ctx, req.OwnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "owner not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup owner")
		}

		contract := &models.Contract{
			PropertyID:  req.PropertyID,
			RenterID:    req.RenterID,
			OwnerID:     req.OwnerID,
			StartDate:   *req.StartDate,
			EndDate:     *req.EndDate,
			MonthlyRent: req.MonthlyRent,
			Status:      true,
		}
		persisted, err := NewRepository(tx).Create(ctx, contract)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contract")
		}
		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(created), nil
}
