package properties

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/db/models"
)

// Repository exposes property persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a properties repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new property and returns the persisted model.
func (r *Repository) Create(ctx context.Context, property *models.Property) (*models.Property, error) {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// FindByID loads a property by primary key regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// ListAll returns every property row, inactive included.
func (r *Repository) ListAll(ctx context.Context) ([]models.Property, error) {
	var rows []models.Property
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListActive returns only properties that have not been soft deleted.
func (r *Repository) ListActive(ctx context.Context) ([]models.Property, error) {
	var rows []models.Property
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateColumns applies the supplied column map to the property row.
func (r *Repository) UpdateColumns(ctx context.Context, id uint, cols map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Updates(cols).Error
}

// SetActive flips the soft-delete flag on the property row.
func (r *Repository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("active", active).Error
}
