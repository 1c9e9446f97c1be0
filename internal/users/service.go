package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rentora/rentora-backend/pkg/config"
	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/security"
	"github.com/rentora/rentora-backend/pkg/visibility"
)

// Service defines the behavior needed by the users controller.
type Service interface {
	List(ctx context.Context, level visibility.Level) (*ListResponse, error)
	Create(ctx context.Context, req CreateRequest) (*UserDTO, error)
	Update(ctx context.Context, req UpdateRequest) (*UserDTO, error)
	Deactivate(ctx context.Context, req DeactivateRequest) (*UserDTO, error)
}

type repository interface {
	List(ctx context.Context) ([]models.User, error)
}

type service struct {
	repo        repository
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Repo           repository
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

// NewService constructs a users service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{
		repo:        params.Repo,
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// ListResponse carries one of the two projections, never both.
type ListResponse struct {
	Users        []UserDTO        `json:"users,omitempty"`
	MinimalUsers []MinimalUserDTO `json:"minimal_users,omitempty"`
}

// CreateRequest is the admin-only payload for provisioning an account directly.
type CreateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateRequest patches a user. Nil pointers leave the column untouched.
type UpdateRequest struct {
	ID        uint    `json:"id" validate:"required"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=50"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive  *bool   `json:"is_active,omitempty"`
	IsAdmin   *bool   `json:"is_admin,omitempty"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
}

// DeactivateRequest names the account to soft delete.
type DeactivateRequest struct {
	ID uint `json:"id" validate:"required"`
}

func (s *service) List(ctx context.Context, level visibility.Level) (*ListResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}

	if level.AtLeast(visibility.Admin) {
		out := make([]UserDTO, 0, len(rows))
		for i := range rows {
			out = append(out, *FromModel(&rows[i]))
		}
		return &ListResponse{Users: out}, nil
	}

	out := make([]MinimalUserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *MinimalFromModel(&rows[i]))
	}
	return &ListResponse{MinimalUsers: out}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*UserDTO, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and email are required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *models.User
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByUsername(ctx, username); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check username")
		}

		user, err := repo.Create(ctx, CreateUserDTO{
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			IsAdmin:      req.IsAdmin,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "username or email already taken")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*UserDTO, error) {
	var updated *models.User
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		user, err := repo.FindByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}

		cols := map[string]any{}
		if req.Email != nil {
			cols["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.Password != nil {
			hash, err := security.HashPassword(*req.Password, s.passwordCfg)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
			}
			cols["password"] = hash
		}
		if req.IsActive != nil {
			cols["is_active"] = *req.IsActive
		}
		if req.IsAdmin != nil {
			cols["is_admin"] = *req.IsAdmin
		}

		if err := repo.Update(ctx, user.ID, cols); err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already taken")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update user")
		}

		if (req.FirstName != nil || req.LastName != nil) && user.Person != nil {
			if req.FirstName != nil {
				user.Person.FirstName = *req.FirstName
			}
			if req.LastName != nil {
				user.Person.LastName = *req.LastName
			}
			if err := NewPersonRepository(tx).UpdateName(ctx, user.Person.ID, user.Person.FirstName, user.Person.LastName); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update person")
			}
		}

		fresh, err := repo.FindByID(ctx, req.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload user")
		}
		updated = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}

func (s *service) Deactivate(ctx context.Context, req DeactivateRequest) (*UserDTO, error) {
	var updated *models.User
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		user, err := repo.FindByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}

		// Repeating a deactivate is a no-op, not an error.
		if user.IsActive {
			if err := repo.SetActive(ctx, user.ID, false); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate user")
			}
			user.IsActive = false
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return FromModel(updated), nil
}
