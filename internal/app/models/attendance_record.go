package models

import (
	"time"
)

// AttendanceRecord defines one per-student-per-day status entry based on
// the 'attendance_records' table. (StudentID, Date) is unique: at most one
// status per student per day, enforced by the store.
type AttendanceRecord struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Date      time.Time `json:"date" db:"date"`
	Status    string    `json:"status" db:"status"`
	MarkedBy  *int64    `json:"markedBy,omitempty" db:"marked_by"` // Weak reference, cleared if the marker is deleted
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RosterEntry joins a student to their attendance status for one date.
// Status is nil when the student has no record for that date.
type RosterEntry struct {
	StudentID int64   `json:"studentId"`
	Username  string  `json:"username"`
	Name      *string `json:"name,omitempty"`
	RollNo    *string `json:"rollNo,omitempty"`
	Section   *string `json:"section,omitempty"`
	Status    *string `json:"status,omitempty"`
	MarkedBy  *int64  `json:"markedBy,omitempty"`
}

// AttendanceSummary is the derived attendance percentage for a student.
// Holidays are excluded from both sides of the ratio.
type AttendanceSummary struct {
	StudentID   int64   `json:"studentId"`
	Percentage  float64 `json:"percentage"`
	PresentDays int     `json:"presentDays"`
	TotalDays   int     `json:"totalDays"`
}
