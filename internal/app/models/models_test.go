package models

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"student", "advisor", "admin", "attendance_incharge", "faculty"} {
		role, ok := ParseRole(valid)
		if !ok || string(role) != valid {
			t.Errorf("ParseRole(%q) = (%q, %v), want valid", valid, role, ok)
		}
	}

	for _, invalid := range []string{"", "Student", "superuser", "ADMIN"} {
		if _, ok := ParseRole(invalid); ok {
			t.Errorf("ParseRole(%q) should be invalid", invalid)
		}
	}
}

func TestLeaveStatusTerminal(t *testing.T) {
	if LeavePending.Terminal() {
		t.Error("pending must not be terminal")
	}
	if !LeaveApproved.Terminal() {
		t.Error("approved must be terminal")
	}
	if !LeaveRejected.Terminal() {
		t.Error("rejected must be terminal")
	}
}
