package properties

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rentora/rentora-backend/pkg/db"
	"github.com/rentora/rentora-backend/pkg/db/models"
	pkgerrors "github.com/rentora/rentora-backend/pkg/errors"
	"github.com/rentora/rentora-backend/pkg/visibility"
)

func newTestDB(t *testing.T) *db.Client {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Person{}, &models.User{}, &models.Property{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db.FromGorm(conn)
}

func newTestService(t *testing.T, client *db.Client) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo: NewRepository(client.DB()),
		DB:   client,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func seedOwner(t *testing.T, client *db.Client) *models.User {
	t.Helper()
	owner := &models.User{
		Username:     "owner",
		Email:        "owner@example.com",
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	if err := client.DB().Create(owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return owner
}

func seedProperty(t *testing.T, client *db.Client, ownerID uint, active bool) *models.Property {
	t.Helper()
	property := &models.Property{
		Address:     "123 Main St",
		Rooms:       3,
		Bathrooms:   2,
		MonthlyRent: decimal.NewFromInt(1500),
		OwnerID:     ownerID,
		Active:      active,
	}
	if err := client.DB().Create(property).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return property
}

func TestCreateRejectsUnknownOwner(t *testing.T) {
	client := newTestDB(t)
	svc := newTestService(t, client)

	_, err := svc.Create(context.Background(), CreateRequest{
		Address:     "500 Nowhere Rd",
		Rooms:       2,
		Bathrooms:   1,
		MonthlyRent: decimal.NewFromInt(900),
		OwnerID:     42,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown owner, got %v", err)
	}

	var count int64
	if err := client.DB().Model(&models.Property{}).Count(&count).Error; err != nil {
		t.Fatalf("count properties: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected create must not persist rows, found %d", count)
	}
}

func TestListVisibilitySplit(t *testing.T) {
	client := newTestDB(t)
	svc := newTestService(t, client)
	owner := seedOwner(t, client)
	seedProperty(t, client, owner.ID, true)
	inactive := seedProperty(t, client, owner.ID, false)

	adminRows, err := svc.List(context.Background(), visibility.Admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminRows) != 2 {
		t.Fatalf("admins see all rows, got %d", len(adminRows))
	}

	userRows, err := svc.List(context.Background(), visibility.Authenticated)
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if len(userRows) != 1 {
		t.Fatalf("non-admins see only active rows, got %d", len(userRows))
	}
	for _, row := range userRows {
		if row.ID == inactive.ID {
			t.Fatalf("inactive property leaked to non-admin list")
		}
	}
}

func TestCreatePersistsInactiveFlag(t *testing.T) {
	client := newTestDB(t)
	owner := seedOwner(t, client)
	inactive := seedProperty(t, client, owner.ID, false)

	var row models.Property
	if err := client.DB().First(&row, "id = ?", inactive.ID).Error; err != nil {
		t.Fatalf("reload property: %v", err)
	}
	if row.Active {
		t.Fatalf("property inserted with active=false must stay inactive")
	}
}

func TestPatchTouchesOnlySuppliedFields(t *testing.T) {
	client := newTestDB(t)
	svc := newTestService(t, client)
	owner := seedOwner(t, client)
	property := seedProperty(t, client, owner.ID, true)

	newRooms := 5
	dto, err := svc.Patch(context.Background(), PatchRequest{
		ID:    property.ID,
		Rooms: &newRooms,
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	if dto.Rooms != 5 {
		t.Fatalf("expected rooms updated to 5, got %d", dto.Rooms)
	}
	if dto.Address != property.Address {
		t.Fatalf("address must be untouched, got %q", dto.Address)
	}
	if !dto.MonthlyRent.Equal(property.MonthlyRent) {
		t.Fatalf("monthly_rent must be untouched, got %s", dto.MonthlyRent)
	}
	if dto.OwnerID != owner.ID {
		t.Fatalf("owner_id must be untouched, got %d", dto.OwnerID)
	}
	if !dto.Active {
		t.Fatalf("active must be untouched")
	}
}

func TestPatchUnknownPropertyNotFound(t *testing.T) {
	client := newTestDB(t)
	svc := newTestService(t, client)

	rooms := 2
	_, err := svc.Patch(context.Background(), PatchRequest{ID: 99, Rooms: &rooms})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	client := newTestDB(t)
	svc := newTestService(t, client)
	owner := seedOwner(t, client)
	property := seedProperty(t, client, owner.ID, true)

	first, err := svc.Deactivate(context.Background(), DeactivateRequest{ID: property.ID})
	if err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	if first.Active {
		t.Fatalf("expected property inactive after deactivate")
	}

	second, err := svc.Deactivate(context.Background(), DeactivateRequest{ID: property.ID})
	if err != nil {
		t.Fatalf("second deactivate must succeed, got %v", err)
	}
	if second.Active {
		t.Fatalf("expected property to stay inactive")
	}
}
