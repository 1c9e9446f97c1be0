package publications

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/db/models"
	"github.com/rentora/rentora-backend/pkg/enums"
)

// Repository exposes publication persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a publications repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new publication and returns the persisted model.
func (r *Repository) Create(ctx context.Context, publication *models.Publication) (*models.Publication, error) {
	if err := r.db.WithContext(ctx).Create(publication).Error; err != nil {
		return nil, err
	}
	return publication, nil
}

// FindByID loads a publication by primary key regardless of status.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Publication, error) {
	var publication models.Publication
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Image").
		First(&publication, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &publication, nil
}

// ListActive returns active publications with their property and image loaded.
func (r *Repository) ListActive(ctx context.Context) ([]models.Publication, error) {
	var rows []models.Publication
	if err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Image").
		Where("status = ?", enums.PublicationStatusActive).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus moves the publication to the given status.
func (r *Repository) SetStatus(ctx context.Context, id uint, status enums.PublicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Publication{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}
