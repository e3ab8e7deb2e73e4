package middleware

import (
	"testing"

	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
)

func TestValidateStructCreateUser(t *testing.T) {
	valid := dto.CreateUserRequest{
		Username: "student1",
		Password: "Secret123!",
		Role:     "student",
	}
	if detail := ValidateStruct(&valid); detail != nil {
		t.Fatalf("valid request rejected: %+v", detail)
	}

	shortPassword := dto.CreateUserRequest{
		Username: "student1",
		Password: "short",
		Role:     "student",
	}
	detail := ValidateStruct(&shortPassword)
	if detail == nil {
		t.Fatal("short password should be rejected")
	}
	if detail.Field != "Password" {
		t.Errorf("field = %q, want Password", detail.Field)
	}

	badRole := dto.CreateUserRequest{
		Username: "student1",
		Password: "Secret123!",
		Role:     "superuser",
	}
	if ValidateStruct(&badRole) == nil {
		t.Fatal("unknown role should be rejected")
	}
}

func TestValidateStructChangePassword(t *testing.T) {
	valid := dto.ChangePasswordRequest{
		CurrentPassword: "OldSecret1!",
		NewPassword:     "NewSecret1!",
	}
	if detail := ValidateStruct(&valid); detail != nil {
		t.Fatalf("valid request rejected: %+v", detail)
	}

	short := dto.ChangePasswordRequest{
		CurrentPassword: "OldSecret1!",
		NewPassword:     "short",
	}
	detail := ValidateStruct(&short)
	if detail == nil {
		t.Fatal("short new password should be rejected")
	}
	if detail.Field != "NewPassword" {
		t.Errorf("field = %q, want NewPassword", detail.Field)
	}
}

func TestValidateStructHolidayBounds(t *testing.T) {
	valid := dto.AutoMarkHolidaysRequest{Year: 2024, Month: 3}
	if detail := ValidateStruct(&valid); detail != nil {
		t.Fatalf("valid request rejected: %+v", detail)
	}

	badMonth := dto.AutoMarkHolidaysRequest{Year: 2024, Month: 13}
	if ValidateStruct(&badMonth) == nil {
		t.Fatal("month 13 should be rejected")
	}
}
