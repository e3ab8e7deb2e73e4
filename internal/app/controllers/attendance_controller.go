package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/app/services"
	"github.com/tolgaakgoz/attendly/internal/middleware"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
)

// AttendanceController handles attendance ledger endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Mark writes a batch of attendance entries
func (c *AttendanceController) Mark(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance payload").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.MarkAttendance(ctx, middleware.CurrentUser(ctx), req.Records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// SetDayStatus applies one status to every student for one date
func (c *AttendanceController) SetDayStatus(ctx *gin.Context) {
	var req dto.SetDayStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid day status payload").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField("date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	affected, err := c.attendanceService.BulkSetDayStatus(ctx, middleware.CurrentUser(ctx), date, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SetDayStatusResponse{
		Message:          "Day status applied",
		Date:             req.Date,
		Status:           req.Status,
		AffectedStudents: affected,
	}))
}

// AutoMarkHolidays marks the month's holidays for every student
func (c *AttendanceController) AutoMarkHolidays(ctx *gin.Context) {
	var req dto.AutoMarkHolidaysRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid holiday payload").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if detail := middleware.ValidateStruct(&req); detail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	dates, total, err := c.attendanceService.AutoMarkHolidays(ctx, middleware.CurrentUser(ctx), req.Year, req.Month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = helpers.FormatDate(d)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AutoMarkHolidaysResponse{
		Message:      "Holidays marked",
		HolidayDates: formatted,
		TotalRecords: total,
	}))
}

// StudentHistory returns one student's attendance records
func (c *AttendanceController) StudentHistory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.attendanceService.StudentHistory(ctx, middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// AllRecords returns the full ledger
func (c *AttendanceController) AllRecords(ctx *gin.Context) {
	records, err := c.attendanceService.AllRecords(ctx, middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// Roster returns every student joined to their status for one date
func (c *AttendanceController) Roster(ctx *gin.Context) {
	date, err := helpers.ParseDate(ctx.Param("date"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField("date")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	roster, err := c.attendanceService.Roster(ctx, middleware.CurrentUser(ctx), date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster))
}

// Percentage returns a student's attendance summary
func (c *AttendanceController) Percentage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.attendanceService.Percentage(ctx, middleware.CurrentUser(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}
