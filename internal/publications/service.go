package publications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/internal/images"
	"github.com/rentora/rentora-backend/internal/properties"
	"github.com/rentora/rentora-backend/internal/users"
	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	"github.com/rentora/rentora-backend/pkg/enums"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/visibility"
)

// Service defines the behavior needed by the publications controller.
type Service interface {
	List(ctx context.Context, level visibility.Level) (*ListResponse, error)
	Create(ctx context.Context, req CreateRequest) (*PublicationDTO, error)
	Deactivate(ctx context.Context, req DeactivateRequest) (*PublicationDTO, error)
}

type repository interface {
	ListActive(ctx context.Context) ([]models.Publication, error)
}

type service struct {
	repo repository
	db   *db.Client
}

// ServiceParams bundles the dependencies required to build a publications service.
type ServiceParams struct {
	Repo repository
	DB   *db.Client
}

// NewService constructs a publications service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("publications repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{repo: params.Repo, db: params.DB}, nil
}

// ListResponse carries one of the two projections, never both.
type ListResponse struct {
	Publications        []PublicationDTO        `json:"publications,omitempty"`
	MinimalPublications []MinimalPublicationDTO `json:"minimal_publications,omitempty"`
}

// CreateRequest carries the admin payload for a new listing.
type CreateRequest struct {
	PropertyID          uint            `json:"property_id" validate:"required"`
	ImageID             uint            `json:"image_id" validate:"required"`
	UserID              uint            `json:"user_id" validate:"required"`
	Title               string          `json:"title" validate:"required,max=100"`
	Description         string          `json:"description,omitempty" validate:"max=500"`
	PriceShown          decimal.Decimal `json:"price_shown" validate:"required"`
	PublicationStatusID *int            `json:"publication_status_id,omitempty"`
	PublishDate         *time.Time      `json:"publish_date,omitempty"`
	ExpiryDate          *time.Time      `json:"expiry_date,omitempty"`
}

// DeactivateRequest names the publication to soft delete.
type DeactivateRequest struct {
	ID uint `json:"id" validate:"required"`
}

func (s *service) List(ctx context.Context, level visibility.Level) (*ListResponse, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list publications")
	}

	if level.AtLeast(visibility.Authenticated) {
		out := make([]PublicationDTO, 0, len(rows))
		for i := range rows {
			out = append(out, *FromModel(&rows[i]))
		}
		return &ListResponse{Publications: out}, nil
	}

	out := make([]MinimalPublicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *MinimalFromModel(&rows[i]))
	}
	return &ListResponse{MinimalPublications: out}, nil
}

// Create verifies the property, image and posting user exist before inserting.
func (s *service) Create(ctx context.Context, req CreateRequest) (*PublicationDTO, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if req.PriceShown.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_shown must not be negative")
	}

	var created *models.Publication
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := properties.NewRepository(tx).FindByID(ctx, req.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup property")
		}
		if _, err := images.NewRepository(tx).FindByID(ctx, req.ImageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "image not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup image")
		}
		if _, err := users.NewRepository(tx).FindByID(ctx, req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}

		publishDate := time.Now().UTC()
		if req.PublishDate != nil {
			publishDate = *req.PublishDate
		}

		publication := &models.Publication{
			PropertyID:          req.PropertyID,
			ImageID:             req.ImageID,
			UserID:              req.UserID,
			Title:               strings.TrimSpace(req.Title),
			Description:         req.Description,
			PriceShown:          req.PriceShown,
			PublicationStatusID: req.PublicationStatusID,
			PublishDate:         publishDate,
			ExpiryDate:          req.ExpiryDate,
			Status:              enums.PublicationStatusActive,
		}
		persisted, err := NewRepository(tx).Create(ctx, publication)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create publication")
		}
		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(created), nil
}

func (s *service) Deactivate(ctx context.Context, req DeactivateRequest) (*PublicationDTO, error) {
	var updated *models.Publication
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		publication, err := repo.FindByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "publication not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup publication")
		}

		// Repeating a deactivate is a no-op, not an error.
		if publication.Status != enums.PublicationStatusInactive {
			if err := repo.SetStatus(ctx, publication.ID, enums.PublicationStatusInactive); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate publication")
			}
			publication.Status = enums.PublicationStatusInactive
		}
		updated = publication
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}
