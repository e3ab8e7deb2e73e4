package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tolgaakgoz/attendly/internal/app/models"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/app/services"
	"github.com/tolgaakgoz/attendly/internal/middleware"
)

// LeaveController handles leave request endpoints
type LeaveController struct {
	leaveService *services.LeaveService
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService *services.LeaveService) *LeaveController {
	return &LeaveController{leaveService: leaveService}
}

// Create submits a leave request for the authenticated student. The body
// is a multipart form so an image can be attached under "image".
func (c *LeaveController) Create(ctx *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid leave request payload").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// optional attachment
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	request, err := c.leaveService.Create(ctx, middleware.CurrentUser(ctx), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// ListMine returns the authenticated student's own requests
func (c *LeaveController) ListMine(ctx *gin.Context) {
	requests, err := c.leaveService.ListMine(ctx, middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// ListPending returns pending requests visible to the actor
func (c *LeaveController) ListPending(ctx *gin.Context) {
	requests, err := c.leaveService.ListPending(ctx, middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// ListAll returns all requests visible to the actor
func (c *LeaveController) ListAll(ctx *gin.Context) {
	requests, err := c.leaveService.ListAll(ctx, middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// Approve moves a pending request to approved and reconciles attendance
func (c *LeaveController) Approve(ctx *gin.Context) {
	c.transition(ctx, models.LeaveApproved)
}

// Reject moves a pending request to rejected
func (c *LeaveController) Reject(ctx *gin.Context) {
	c.transition(ctx, models.LeaveRejected)
}

func (c *LeaveController) transition(ctx *gin.Context, target models.LeaveStatus) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.leaveService.Transition(ctx, middleware.CurrentUser(ctx), id, target)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request))
}
