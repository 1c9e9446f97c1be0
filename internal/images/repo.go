package images

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/db/models"
)

// Repository exposes image persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an images repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new image and returns the persisted model.
func (r *Repository) Create(ctx context.Context, image *models.Image) (*models.Image, error) {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// FindByID loads an image by primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// List returns every image row.
func (r *Repository) List(ctx context.Context) ([]models.Image, error) {
	var rows []models.Image
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes the image row permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Image{}, "id = ?", id).Error
}
