package users

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentora/rentora-backend/pkg/config"
	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/security"
	"github.com/rentora/rentora-backend/pkg/visibility"
)

func newTestClient(t *testing.T) *db.Client {
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

func newTestService(t *testing.T, client *db.Client) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:           NewRepository(client.DB()),
		DB:             client,
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func seedUser(t *testing.T, client *db.Client, username string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$argon2id$stub",
		IsActive:     true,
		IsAdmin:      isAdmin,
	}
	if err := client.DB().Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestListProjectionByPrivilege(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	seedUser(t, client, "alice", true)
	seedUser(t, client, "bob", false)

	adminResp, err := svc.List(context.Background(), visibility.Admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminResp.Users) != 2 || len(adminResp.MinimalUsers) != 0 {
		t.Fatalf("expected full projection for admins, got %+v", adminResp)
	}
	if adminResp.Users[0].Email == "" {
		t.Fatalf("full projection must include email")
	}

	userResp, err := svc.List(context.Background(), visibility.Authenticated)
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if len(userResp.MinimalUsers) != 2 || len(userResp.Users) != 0 {
		t.Fatalf("expected minimal projection for non-admins, got %+v", userResp)
	}
}

func TestFullProjectionNeverSerializesPasswordHash(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	seedUser(t, client, "alice", true)

	resp, err := svc.List(context.Background(), visibility.Admin)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "argon2id") || strings.Contains(string(raw), "password") {
		t.Fatalf("password material leaked into projection: %s", raw)
	}
}

func TestCreateConflictsOnDuplicateUsername(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	seedUser(t, client, "taken", false)

	_, err := svc.Create(context.Background(), CreateRequest{
		Username: "taken",
		Email:    "other@example.com",
		Password: "super-secret",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdatePatchesOnlySuppliedFields(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	user := seedUser(t, client, "carol", false)

	isAdmin := true
	dto, err := svc.Update(context.Background(), UpdateRequest{
		ID:      user.ID,
		IsAdmin: &isAdmin,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !dto.IsAdmin {
		t.Fatalf("expected is_admin set")
	}
	if dto.Email != user.Email {
		t.Fatalf("email must be untouched, got %q", dto.Email)
	}
	if !dto.IsActive {
		t.Fatalf("is_active must be untouched")
	}

	var stored models.User
	if err := client.DB().First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.PasswordHash != user.PasswordHash {
		t.Fatalf("password must be untouched")
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	user := seedUser(t, client, "dave", false)

	newPassword := "rotated-secret"
	if _, err := svc.Update(context.Background(), UpdateRequest{
		ID:       user.ID,
		Password: &newPassword,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	var stored models.User
	if err := client.DB().First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.PasswordHash == newPassword {
		t.Fatalf("password stored in clear")
	}
	ok, err := security.VerifyPassword(newPassword, stored.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("rotated hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	user := seedUser(t, client, "erin", false)

	first, err := svc.Deactivate(context.Background(), DeactivateRequest{ID: user.ID})
	if err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	if first.IsActive {
		t.Fatalf("expected user inactive")
	}

	second, err := svc.Deactivate(context.Background(), DeactivateRequest{ID: user.ID})
	if err != nil {
		t.Fatalf("second deactivate must succeed, got %v", err)
	}
	if second.IsActive {
		t.Fatalf("expected user to stay inactive")
	}
}

func TestDeactivateUnknownUserNotFound(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)

	_, err := svc.Deactivate(context.Background(), DeactivateRequest{ID: 404})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
