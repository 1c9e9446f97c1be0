package auth

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	pkgAuth "github.com/rentora/rentora-backend/pkg/auth"
	"github.com/rentora/rentora-backend/pkg/config"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/security"
)

func TestServiceLoginMintsAdminClaim(t *testing.T) {
	password := "admin-secret"
	user := &models.User{
		ID:           7,
		Username:     "ana_admin",
		Email:        "ana@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     true,
		IsAdmin:      true,
	}
	cfg := testJWTConfig()

	svc := buildTestService(t, user, cfg)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: user.Username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected is_admin claim to be true")
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user_id %d, got %d", user.ID, claims.UserID)
	}
	if claims.Username() != user.Username {
		t.Fatalf("expected subject %q, got %q", user.Username, claims.Username())
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatalf("expected user echo in response")
	}
}

func TestServiceLoginUnknownUserAndBadPasswordLookIdentical(t *testing.T) {
	user := &models.User{
		ID:           3,
		Username:     "carla",
		Email:        "carla@example.com",
		PasswordHash: mustHashPassword(t, "right-password"),
		IsActive:     true,
	}
	svc := buildTestService(t, user, testJWTConfig())

	_, unknownErr := svc.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	_, badPassErr := svc.Login(context.Background(), LoginRequest{
		Username: user.Username,
		Password: "wrong-password",
	})

	for _, err := range []error{unknownErr, badPassErr} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
		if typed.Message() != invalidCredentialsMessage {
			t.Fatalf("expected uniform message, got %q", typed.Message())
		}
	}
}

func TestServiceLoginRejectsInactiveUser(t *testing.T) {
	password := "still-knows-it"
	user := &models.User{
		ID:           5,
		Username:     "former",
		Email:        "former@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     false,
	}
	svc := buildTestService(t, user, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: user.Username,
		Password: password,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for inactive user, got %v", err)
	}
}

func TestServiceLoginNonAdminClaimIsFalse(t *testing.T) {
	password := "tenant-secret"
	user := &models.User{
		ID:           9,
		Username:     "tenant",
		Email:        "tenant@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     true,
		IsAdmin:      false,
	}
	cfg := testJWTConfig()
	svc := buildTestService(t, user, cfg)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: user.Username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.IsAdmin {
		t.Fatalf("expected is_admin claim to be false")
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected expiry on token")
	}
	wantExpiry := time.Now().UTC().Add(cfg.TokenTTL())
	if diff := claims.ExpiresAt.Time.Sub(wantExpiry); diff > time.Minute || diff < -time.Minute {
		t.Fatalf("unexpected expiry drift %v", diff)
	}
}

func buildTestService(t *testing.T, user *models.User, cfg config.JWTConfig) Service {
	t.Helper()
	repo := newStubUserRepository()
	if user != nil {
		repo.data[user.Username] = user
	}
	svc, err := NewService(ServiceParams{UserRepo: repo, JWTConfig: cfg})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "rentora",
		ExpirationMinutes: 30,
	}
}

type stubUserRepository struct {
	data map[string]*models.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{data: map[string]*models.User{}}
}

func (s *stubUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := s.data[username]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}
