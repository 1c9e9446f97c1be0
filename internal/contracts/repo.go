package contracts

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/db/models"
)

// Repository exposes contract persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contracts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new contract and returns the persisted model.
func (r *Repository) Create(ctx context.Context, contract *models.Contract) (*models.Contract, error) {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return nil, err
	}
	return contract, nil
}

// List returns every contract row.
func (r *Repository) List(ctx context.Context) ([]models.Contract, error) {
	var rows []models.Contract
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
