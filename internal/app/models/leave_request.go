package models

import (
	"time"
)

// LeaveRequest defines the leave application model based on the
// 'leave_requests' table. A request is created pending and transitions
// exactly once to approved or rejected.
type LeaveRequest struct {
	ID         int64       `json:"id" db:"id"`
	StudentID  int64       `json:"studentId" db:"student_id"`
	StartDate  time.Time   `json:"startDate" db:"start_date"` // Inclusive
	EndDate    time.Time   `json:"endDate" db:"end_date"`     // Inclusive; >= StartDate
	Reason     string      `json:"reason" db:"reason"`
	Status     LeaveStatus `json:"status" db:"status"`
	ImageURL   *string     `json:"imageUrl,omitempty" db:"image_url"`     // Attachment in the blob store (nullable)
	ApprovedBy *int64      `json:"approvedBy,omitempty" db:"approved_by"` // Who resolved it, approval or rejection (nullable until resolved)
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`

	// AdvisorIDs is the assigned-advisor set from the request_advisors
	// join table. A request is visible to an advisor only when they are
	// a member of this set.
	AdvisorIDs []int64 `json:"advisorIds,omitempty"`
}
