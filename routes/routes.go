package routes

import (
	"dorm-management-api/controllers"
	"dorm-management-api/middleware"
	"dorm-management-api/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the controllers the route table needs.
type Handlers struct {
	Accounts      middleware.AccountChecker
	Auth          *controllers.AuthController
	Student       *controllers.StudentApplicationController
	Applications  *controllers.AdminApplicationController
	Students      *controllers.StudentController
	Messages      *controllers.MessageController
	Announcements *controllers.AnnouncementController
}

func SetupRoutes(router *gin.Engine, h Handlers) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", h.Auth.Login)
			public.POST("/register", h.Auth.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Dorm Management API is running",
				})
			})

			public.GET("/announcements", h.Announcements.GetAnnouncements)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(h.Accounts))
		{
			// Messages (all authenticated users)
			protected.GET("/messages", h.Messages.GetMessages)
			protected.POST("/messages", h.Messages.SendMessage)
			protected.PUT("/messages/:id/read", h.Messages.MarkRead)

			// Student's own application
			student := protected.Group("/student/application")
			student.Use(middleware.RequireRole(models.RoleStudent))
			{
				student.GET("", h.Student.GetApplication)
				student.POST("/phase-one", h.Student.SubmitPhaseOne)
				student.POST("/phase-two", h.Student.SubmitPhaseTwo)
				student.GET("/eligibility", h.Student.Eligibility)
			}

			// Staff review
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin, models.RoleOwner))
			{
				applications := admin.Group("/applications")
				{
					applications.GET("", h.Applications.ListApplications)
					applications.GET("/export", h.Applications.Export)
					applications.POST("/approve", h.Applications.BulkApprove)
					applications.POST("/decline", h.Applications.BulkDecline)
					applications.POST("/resubmit", h.Applications.BulkResubmit)
					applications.POST("/assign", h.Applications.BulkAssign)
					applications.GET("/:id", h.Applications.GetApplication)
					applications.POST("/:id/status", h.Applications.ChangeStatus)
					applications.DELETE("/:id", h.Applications.DeleteApplication)
				}

				students := admin.Group("/students")
				{
					students.GET("", h.Students.ListStudents)
					students.GET("/lookup", h.Students.LookupStudent)
					students.PUT("/:id/building", h.Students.UpdateBuilding)
				}

				announcements := admin.Group("/announcements")
				{
					announcements.POST("", h.Announcements.CreateAnnouncement)
					announcements.PUT("/:id", h.Announcements.UpdateAnnouncement)
					announcements.DELETE("/:id", h.Announcements.DeleteAnnouncement)
				}
			}

			// Staff accounts (owner only)
			owner := protected.Group("/owner/staff")
			owner.Use(middleware.RequireRole(models.RoleOwner))
			{
				owner.GET("", h.Auth.ListStaff)
				owner.POST("", h.Auth.CreateAdmin)
				owner.DELETE("/:username", h.Auth.RemoveStaff)
			}
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Endpoint not found"})
	})
}
