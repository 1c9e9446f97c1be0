package images

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
)

// Service defines the behavior needed by the images controller.
type Service interface {
	List(ctx context.Context) ([]ImageDTO, error)
	Create(ctx context.Context, req CreateRequest) (*ImageDTO, error)
	Delete(ctx context.Context, req DeleteRequest) error
}

type repository interface {
	List(ctx context.Context) ([]models.Image, error)
}

type service struct {
	repo repository
	db   *db.Client
}

// ServiceParams bundles the dependencies required to build an images service.
type ServiceParams struct {
	Repo repository
	DB   *db.Client
}

// NewService constructs an images service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("images repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{repo: params.Repo, db: params.DB}, nil
}

// ImageDTO is the transport shape for an image record.
type ImageDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest carries the admin payload for a new image record.
type CreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	URL  string `json:"url" validate:"required,url,max=255"`
}

// DeleteRequest names the image to remove. Deletion is permanent.
type DeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

func FromModel(i *models.Image) *ImageDTO {
	if i == nil {
		return nil
	}
	return &ImageDTO{
		ID:        i.ID,
		Name:      i.Name,
		URL:       i.URL,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func (s *service) List(ctx context.Context) ([]ImageDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list images")
	}
	out := make([]ImageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*ImageDTO, error) {
	name := strings.TrimSpace(req.Name)
	url := strings.TrimSpace(req.URL)
	if name == "" || url == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and url are required")
	}

	var created *models.Image
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		image, err := NewRepository(tx).Create(ctx, &models.Image{Name: name, URL: url})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create image")
		}
		created = image
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(created), nil
}

func (s *service) Delete(ctx context.Context, req DeleteRequest) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByID(ctx, req.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "image not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup image")
		}
		if err := repo.Delete(ctx, req.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete image")
		}
		return nil
	})
}
