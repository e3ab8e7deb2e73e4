package dto

// CreateLeaveRequest is the student payload for submitting a leave request,
// bound from a multipart form so an image can ride along. Dates are
// inclusive, formatted YYYY-MM-DD. AdvisorIDs is optional; when omitted the
// request is assigned to every advisor.
type CreateLeaveRequest struct {
	StartDate  string  `form:"startDate" json:"startDate" binding:"required"`
	EndDate    string  `form:"endDate" json:"endDate" binding:"required"`
	Reason     string  `form:"reason" json:"reason" binding:"required"`
	AdvisorIDs []int64 `form:"advisorIds" json:"advisorIds,omitempty"`
}
