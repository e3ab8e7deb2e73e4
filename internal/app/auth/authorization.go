package auth

import (
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/pkg/apperrors"
)

// Capability names a protected operation. Handlers and services check
// capabilities here instead of comparing role strings inline, so the
// complete permission surface lives in one table.
type Capability string

const (
	// CapabilityMarkAttendance covers manual marking, bulk day-status
	// writes and automatic holiday marking.
	CapabilityMarkAttendance Capability = "attendance:mark"
	// CapabilityResolveLeave covers approving and rejecting leave requests.
	CapabilityResolveLeave Capability = "leave:resolve"
	// CapabilityViewStudentData covers reading any student's requests and
	// attendance records.
	CapabilityViewStudentData Capability = "students:view"
	// CapabilityViewRoster covers per-date rosters and student listings.
	CapabilityViewRoster Capability = "roster:view"
	// CapabilitySubmitLeave covers creating a leave request for oneself.
	CapabilitySubmitLeave Capability = "leave:submit"
	// CapabilityManageUsers covers user creation, update and deletion.
	CapabilityManageUsers Capability = "users:manage"
)

var capabilityRoles = map[Capability]map[models.Role]bool{
	CapabilityMarkAttendance: {
		models.RoleAdmin:              true,
		models.RoleAdvisor:            true,
		models.RoleAttendanceIncharge: true,
	},
	CapabilityResolveLeave: {
		models.RoleAdmin:   true,
		models.RoleAdvisor: true,
	},
	CapabilityViewStudentData: {
		models.RoleAdmin:   true,
		models.RoleAdvisor: true,
	},
	CapabilityViewRoster: {
		models.RoleAdmin:              true,
		models.RoleAdvisor:            true,
		models.RoleAttendanceIncharge: true,
	},
	CapabilitySubmitLeave: {
		models.RoleStudent: true,
	},
	CapabilityManageUsers: {
		models.RoleAdmin: true,
	},
}

// Allowed reports whether the role may exercise the capability. Unknown
// roles and unknown capabilities are always denied.
func Allowed(role models.Role, capability Capability) bool {
	roles, ok := capabilityRoles[capability]
	if !ok {
		return false
	}
	return roles[role]
}

// Authorize is the single authorization choke point. A missing identity
// fails with apperrors.ErrUnauthenticated; a role outside the capability's
// allowed set fails with apperrors.ErrPermissionDenied.
func Authorize(actor *models.User, capability Capability) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if !Allowed(actor.Role, capability) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
