package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	if !IsUniqueViolation(uniqueErr) {
		t.Error("unique violation not detected")
	}
	if !IsUniqueViolation(fmt.Errorf("creating user: %w", uniqueErr)) {
		t.Error("wrapped unique violation not detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation misdetected as unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("plain error misdetected")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation not detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation misdetected as foreign key violation")
	}
}
