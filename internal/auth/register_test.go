package auth

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentora/rentora-backend/pkg/config"
	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/security"
)

func newRegisterTestDB(t *testing.T) *db.Client {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Person{}, &models.User{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db.FromGorm(conn)
}

func newRegisterTestService(t *testing.T, client *db.Client) RegisterService {
	t.Helper()
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             client,
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build register service: %v", err)
	}
	return svc
}

func TestRegisterCreatesNonAdminUserWithPerson(t *testing.T) {
	client := newRegisterTestDB(t)
	svc := newRegisterTestService(t, client)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username:  "newcomer",
		Email:     "Newcomer@Example.com",
		Password:  "super-secret",
		FirstName: "Nina",
		LastName:  "Comer",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.IsAdmin {
		t.Fatalf("registered users must not be admins")
	}
	if !resp.User.IsActive {
		t.Fatalf("registered users start active")
	}
	if resp.User.Email != "newcomer@example.com" {
		t.Fatalf("expected lowercased email, got %q", resp.User.Email)
	}
	if resp.User.Person == nil || resp.User.Person.FirstName != "Nina" {
		t.Fatalf("expected linked person in response")
	}

	var stored models.User
	if err := client.DB().Where("username = ?", "newcomer").First(&stored).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.PasswordHash == "super-secret" {
		t.Fatalf("password must be stored hashed")
	}
	ok, err := security.VerifyPassword("super-secret", stored.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
	if stored.PersonID == nil {
		t.Fatalf("expected person_id to be set")
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	client := newRegisterTestDB(t)
	svc := newRegisterTestService(t, client)

	req := RegisterRequest{
		Username:  "taken",
		Email:     "first@example.com",
		Password:  "super-secret",
		FirstName: "First",
		LastName:  "User",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	req.Email = "second@example.com"
	_, err := svc.Register(context.Background(), req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterRollsBackPersonWhenUserInsertFails(t *testing.T) {
	client := newRegisterTestDB(t)
	svc := newRegisterTestService(t, client)

	if _, err := svc.Register(context.Background(), RegisterRequest{
		Username:  "original",
		Email:     "shared@example.com",
		Password:  "super-secret",
		FirstName: "Orig",
		LastName:  "Inal",
	}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	var personsBefore int64
	if err := client.DB().Model(&models.Person{}).Count(&personsBefore).Error; err != nil {
		t.Fatalf("count persons: %v", err)
	}

	// New username passes the pre-check, but the duplicate email makes the
	// user insert fail after the person insert succeeded.
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:  "different",
		Email:     "shared@example.com",
		Password:  "super-secret",
		FirstName: "Ghost",
		LastName:  "Person",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	var personsAfter int64
	if err := client.DB().Model(&models.Person{}).Count(&personsAfter).Error; err != nil {
		t.Fatalf("count persons: %v", err)
	}
	if personsAfter != personsBefore {
		t.Fatalf("person insert leaked through rollback: before=%d after=%d", personsBefore, personsAfter)
	}
}
