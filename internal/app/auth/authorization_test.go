package auth

import (
	"errors"
	"testing"

	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		capability Capability
		want       bool
	}{
		{"admin marks attendance", models.RoleAdmin, CapabilityMarkAttendance, true},
		{"advisor marks attendance", models.RoleAdvisor, CapabilityMarkAttendance, true},
		{"incharge marks attendance", models.RoleAttendanceIncharge, CapabilityMarkAttendance, true},
		{"student cannot mark attendance", models.RoleStudent, CapabilityMarkAttendance, false},
		{"faculty cannot mark attendance", models.RoleFaculty, CapabilityMarkAttendance, false},

		{"admin resolves leave", models.RoleAdmin, CapabilityResolveLeave, true},
		{"advisor resolves leave", models.RoleAdvisor, CapabilityResolveLeave, true},
		{"incharge cannot resolve leave", models.RoleAttendanceIncharge, CapabilityResolveLeave, false},
		{"student cannot resolve leave", models.RoleStudent, CapabilityResolveLeave, false},

		{"admin views student data", models.RoleAdmin, CapabilityViewStudentData, true},
		{"advisor views student data", models.RoleAdvisor, CapabilityViewStudentData, true},
		{"incharge cannot view student data", models.RoleAttendanceIncharge, CapabilityViewStudentData, false},

		{"incharge views roster", models.RoleAttendanceIncharge, CapabilityViewRoster, true},
		{"student cannot view roster", models.RoleStudent, CapabilityViewRoster, false},

		{"student submits leave", models.RoleStudent, CapabilitySubmitLeave, true},
		{"admin cannot submit leave", models.RoleAdmin, CapabilitySubmitLeave, false},
		{"advisor cannot submit leave", models.RoleAdvisor, CapabilitySubmitLeave, false},

		{"admin manages users", models.RoleAdmin, CapabilityManageUsers, true},
		{"advisor cannot manage users", models.RoleAdvisor, CapabilityManageUsers, false},

		{"unknown role denied", models.Role("superuser"), CapabilityManageUsers, false},
		{"unknown capability denied", models.RoleAdmin, Capability("made:up"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.capability); got != tt.want {
				t.Errorf("Allowed(%q, %q) = %v, want %v", tt.role, tt.capability, got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	if err := Authorize(admin, CapabilityManageUsers); err != nil {
		t.Fatalf("Authorize(admin, manage users) = %v, want nil", err)
	}

	student := &models.User{ID: 2, Role: models.RoleStudent}
	if err := Authorize(student, CapabilityManageUsers); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("Authorize(student, manage users) = %v, want ErrPermissionDenied", err)
	}

	if err := Authorize(nil, CapabilitySubmitLeave); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("Authorize(nil, submit leave) = %v, want ErrUnauthenticated", err)
	}
}
