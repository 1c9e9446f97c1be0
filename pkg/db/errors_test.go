package db

import (
	"errors"
	"testing"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "uq_user_username" (SQLSTATE 23505)`)
	sqliteErr := errors.New("UNIQUE constraint failed: user.username")

	if !IsUniqueViolation(pgErr) {
		t.Fatal("expected postgres duplicate key error to match")
	}
	if !IsUniqueViolation(sqliteErr) {
		t.Fatal("expected sqlite unique constraint error to match")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("unrelated error should not match")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil error should not match")
	}
}

func TestIsUniqueViolationByConstraintName(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_user_email"`)
	if !IsUniqueViolation(err, "uq_user_email") {
		t.Fatal("expected named constraint to match")
	}
	if IsUniqueViolation(err, "uq_user_username") {
		t.Fatal("different constraint name should not match")
	}
}
