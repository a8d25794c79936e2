package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"krishisahay/internal/models"
)

func TestUpsertUser_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := &models.User{
		Sub:   "test-sub-123",
		Email: "test@example.com",
		Name:  "Test User",
	}

	if err := db.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser() error = %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("UpsertUser() did not set ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("UpsertUser() did not set CreatedAt")
	}
}

func TestUpsertUser_Update(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := &models.User{
		Sub:   "update-sub-123",
		Email: "original@example.com",
		Name:  "Original Name",
	}
	if err := db.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser() create error = %v", err)
	}
	originalID := user.ID

	user.Email = "updated@example.com"
	user.Name = "Updated Name"
	if err := db.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser() update error = %v", err)
	}

	// ID should be the same
	if user.ID != originalID {
		t.Errorf("UpsertUser() changed ID from %v to %v", originalID, user.ID)
	}

	fetched, err := db.GetUserBySub(ctx, "update-sub-123")
	if err != nil {
		t.Fatalf("GetUserBySub() error = %v", err)
	}
	if fetched.Email != "updated@example.com" {
		t.Errorf("UpsertUser() email = %q, want %q", fetched.Email, "updated@example.com")
	}
	if fetched.Name != "Updated Name" {
		t.Errorf("UpsertUser() name = %q, want %q", fetched.Name, "Updated Name")
	}
}

func TestUpsertUser_KeepsUsername(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := &models.User{Sub: "pki:ravik", Username: "ravik", Name: "Ravi Kumar"}
	if err := db.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser() error = %v", err)
	}

	// A later upsert without a username must not clear it.
	again := &models.User{Sub: "pki:ravik", Name: "Ravi Kumar"}
	if err := db.UpsertUser(ctx, again); err != nil {
		t.Fatalf("UpsertUser() error = %v", err)
	}

	fetched, err := db.GetUserByUsername(ctx, "ravik")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if fetched.ID != user.ID {
		t.Errorf("GetUserByUsername() id = %v, want %v", fetched.ID, user.ID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := db.GetUserBySub(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserBySub() error = %v, want %v", err, ErrUserNotFound)
	}
	if _, err := db.GetUserByUsername(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByUsername() error = %v, want %v", err, ErrUserNotFound)
	}
}
