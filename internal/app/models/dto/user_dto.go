package dto

// CreateUserRequest is the admin payload for creating a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=64"`
	Password string `json:"password" binding:"required" validate:"min=8"`
	Role     string `json:"role" binding:"required" validate:"oneof=student advisor admin attendance_incharge faculty"`

	RollNo   *string  `json:"rollNo,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Semester *int     `json:"semester,omitempty"`
	Year     *int     `json:"year,omitempty"`
	DOB      *string  `json:"dob,omitempty"` // YYYY-MM-DD
	Age      *int     `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	CGPA     *float64 `json:"cgpa,omitempty"`
	Course   *string  `json:"course,omitempty"`
	Section  *string  `json:"section,omitempty"`
}

// UpdateMyProfileRequest is the self-service payload for updating one's own
// profile attributes. Only non-nil fields are applied; username, role and
// password are managed through their own flows.
type UpdateMyProfileRequest struct {
	Name     *string  `json:"name,omitempty"`
	Semester *int     `json:"semester,omitempty"`
	Year     *int     `json:"year,omitempty"`
	DOB      *string  `json:"dob,omitempty"` // YYYY-MM-DD
	Age      *int     `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	CGPA     *float64 `json:"cgpa,omitempty"`
	Course   *string  `json:"course,omitempty"`
	Section  *string  `json:"section,omitempty"`
}

// ChangePasswordRequest is the self-service payload for replacing one's own
// password. The current password is re-verified before anything changes.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required" validate:"min=8"`
}

// UpdateUserRequest is the admin payload for updating a user.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	Username *string  `json:"username,omitempty"`
	Password *string  `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *string  `json:"role,omitempty" validate:"omitempty,oneof=student advisor admin attendance_incharge faculty"`
	RollNo   *string  `json:"rollNo,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Semester *int     `json:"semester,omitempty"`
	Year     *int     `json:"year,omitempty"`
	DOB      *string  `json:"dob,omitempty"` // YYYY-MM-DD
	Age      *int     `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	CGPA     *float64 `json:"cgpa,omitempty"`
	Course   *string  `json:"course,omitempty"`
	Section  *string  `json:"section,omitempty"`
}
