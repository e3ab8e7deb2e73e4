package routes

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/tolgaakgoz/attendly/internal/app/auth"
	"github.com/tolgaakgoz/attendly/internal/app/controllers"
	"github.com/tolgaakgoz/attendly/internal/app/models/dto"
	"github.com/tolgaakgoz/attendly/internal/middleware"
	"github.com/tolgaakgoz/attendly/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	leaveController *controllers.LeaveController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.TokenBucket,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/token", loginLimiter.Limit(), authController.Login)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	router.GET("/metrics", metrics.Handler())

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	users := authenticated.Group("/users")
	{
		users.GET("/me", userController.GetMe)
		users.PUT("/me", userController.UpdateMe)
		users.POST("/me/password", userController.ChangeMyPassword)
		users.POST("/me/profile-picture", userController.UploadProfilePicture)

		usersRoster := users.Group("")
		usersRoster.Use(authMiddleware.CapabilityRequired(appauth.CapabilityViewRoster))
		{
			usersRoster.GET("", userController.ListUsers)
			usersRoster.GET("/students", userController.ListStudents)
		}

		usersStudent := users.Group("")
		usersStudent.Use(authMiddleware.CapabilityRequired(appauth.CapabilityViewStudentData))
		{
			usersStudent.GET("/students/:id", userController.GetStudent)
		}

		usersAdmin := users.Group("")
		usersAdmin.Use(authMiddleware.CapabilityRequired(appauth.CapabilityManageUsers))
		{
			usersAdmin.POST("", userController.CreateUser)
			usersAdmin.PUT("/:id", userController.UpdateUser)
			usersAdmin.DELETE("/:id", userController.DeleteUser)
		}
	}

	requests := authenticated.Group("/requests")
	{
		// the services scope these further (student self-only, advisor
		// assignment filtering)
		requests.POST("", leaveController.Create)
		requests.GET("/me", leaveController.ListMine)
		requests.GET("", leaveController.ListAll)
		requests.GET("/pending", leaveController.ListPending)

		requestsResolve := requests.Group("")
		requestsResolve.Use(authMiddleware.CapabilityRequired(appauth.CapabilityResolveLeave))
		{
			requestsResolve.POST("/:id/approve", leaveController.Approve)
			requestsResolve.POST("/:id/reject", leaveController.Reject)
		}
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.GET("/students/:id", attendanceController.StudentHistory)
		attendance.GET("/students/:id/percentage", attendanceController.Percentage)

		attendanceStaff := attendance.Group("")
		attendanceStaff.Use(authMiddleware.CapabilityRequired(appauth.CapabilityMarkAttendance))
		{
			attendanceStaff.POST("/mark", attendanceController.Mark)
			attendanceStaff.POST("/set-day-status", attendanceController.SetDayStatus)
			attendanceStaff.POST("/auto-mark-holidays", attendanceController.AutoMarkHolidays)
		}

		attendanceView := attendance.Group("")
		attendanceView.Use(authMiddleware.CapabilityRequired(appauth.CapabilityViewStudentData))
		{
			attendanceView.GET("", attendanceController.AllRecords)
		}

		attendanceRoster := attendance.Group("")
		attendanceRoster.Use(authMiddleware.CapabilityRequired(appauth.CapabilityViewRoster))
		{
			attendanceRoster.GET("/roster/:date", attendanceController.Roster)
		}
	}
}
