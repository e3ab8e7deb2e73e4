package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                int64      `json:"id" db:"id"`                                  // Unique identifier for the user
	Username          string     `json:"username" db:"username"`                      // Login name, unique
	Password          string     `json:"-" db:"hashed_password"`                      // Bcrypt hash (excluded from JSON)
	Role              Role       `json:"role" db:"role"`                              // User's role, drives every authorization decision
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`                   // Timestamp when the user was created
	RollNo            *string    `json:"rollNo,omitempty" db:"roll_no"`               // Student roll number (nullable)
	Name              *string    `json:"name,omitempty" db:"name"`                    // Display name (nullable)
	Semester          *int       `json:"semester,omitempty" db:"semester"`            // Current semester (nullable)
	Year              *int       `json:"year,omitempty" db:"year"`                    // Year of study (nullable)
	DOB               *time.Time `json:"dob,omitempty" db:"dob"`                      // Date of birth (nullable)
	Age               *int       `json:"age,omitempty" db:"age"`                      // Age (nullable)
	Gender            *string    `json:"gender,omitempty" db:"gender"`                // Gender (nullable)
	CGPA              *float64   `json:"cgpa,omitempty" db:"cgpa"`                    // Cumulative GPA (nullable)
	Course            *string    `json:"course,omitempty" db:"course"`                // Enrolled course (nullable)
	Section           *string    `json:"section,omitempty" db:"section"`              // Class section (nullable)
	ProfilePictureURL *string    `json:"profilePictureUrl,omitempty" db:"profile_picture_url"` // Blob-store URL (nullable)
}
