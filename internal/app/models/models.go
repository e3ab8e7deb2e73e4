package models

// Role defines the closed set of user roles. Authorization decisions are
// made against this enumeration, never against raw strings from clients.
type Role string

const (
	RoleStudent            Role = "student"
	RoleAdvisor            Role = "advisor"
	RoleAdmin              Role = "admin"
	RoleAttendanceIncharge Role = "attendance_incharge"
	RoleFaculty            Role = "faculty"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdvisor, RoleAdmin, RoleAttendanceIncharge, RoleFaculty:
		return true
	}
	return false
}

// ParseRole converts a string into a Role, ok is false for unknown values.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// LeaveStatus defines the leave request state machine states.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Terminal reports whether the status has no outgoing transitions.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// Well-known attendance status labels. The status column itself is
// free-form; these are the labels the system writes or treats specially.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceOnDuty  = "On-Duty"
	AttendanceHoliday = "Holiday"
)
