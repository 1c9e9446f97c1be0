package users

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/db/models"
)

// PersonRepository exposes persistence for the identity rows behind users.
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository constructs a person repo bound to the provided GORM DB.
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// CreatePersonDTO holds the data required to persist a new person.
type CreatePersonDTO struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
}

// Create inserts a new person and returns the persisted model.
func (r *PersonRepository) Create(ctx context.Context, dto CreatePersonDTO) (*models.Person, error) {
	person := &models.Person{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		DateOfBirth: dto.DateOfBirth,
	}
	if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

// UpdateName rewrites the name columns on a person row.
func (r *PersonRepository) UpdateName(ctx context.Context, id uint, firstName, lastName string) error {
	return r.db.WithContext(ctx).
		Model(&models.Person{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"first_name": firstName,
			"last_name":  lastName,
		}).Error
}
