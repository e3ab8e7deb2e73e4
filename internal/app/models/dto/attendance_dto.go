package dto

// AttendanceMark is one (student, date, status) entry in a marking batch
type AttendanceMark struct {
	StudentID int64  `json:"studentId" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Status    string `json:"status" binding:"required"`
}

// MarkAttendanceRequest is the staff payload for batch attendance marking
type MarkAttendanceRequest struct {
	Records []AttendanceMark `json:"records" binding:"required,min=1"`
}

// SetDayStatusRequest applies one status to every student for one date
type SetDayStatusRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Status string `json:"status" binding:"required"`
}

// SetDayStatusResponse reports how many students were updated
type SetDayStatusResponse struct {
	Message          string `json:"message"`
	Date             string `json:"date"`
	Status           string `json:"status"`
	AffectedStudents int    `json:"affectedStudents"`
}

// AutoMarkHolidaysRequest selects the month to mark holidays for
type AutoMarkHolidaysRequest struct {
	Year  int `json:"year" binding:"required" validate:"min=1970,max=9999"`
	Month int `json:"month" binding:"required" validate:"min=1,max=12"`
}

// AutoMarkHolidaysResponse lists the computed holiday dates
type AutoMarkHolidaysResponse struct {
	Message      string   `json:"message"`
	HolidayDates []string `json:"holidayDates"`
	TotalRecords int      `json:"totalRecords"`
}
