package main

import (
	"log"
	"os"
	"time"

	"dorm-management-api/config"
	"dorm-management-api/controllers"
	"dorm-management-api/middleware"
	"dorm-management-api/repositories"
	"dorm-management-api/routes"
	"dorm-management-api/services"
	"dorm-management-api/workflow"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	closeLog := config.InitLogging()
	defer closeLog()

	// Initialize database
	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if config.EnvBool("AUTO_MIGRATE") {
		if err := repositories.AutoMigrate(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("Database schema migrated")
	}

	// Repositories
	students := repositories.NewStudentRepository(db)
	applications := repositories.NewApplicationRepository(db)
	users := repositories.NewUserRepository(db)
	messages := repositories.NewMessageRepository(db)
	announcements := repositories.NewAnnouncementRepository(db)

	// Services
	var gate workflow.Gate = workflow.PermissiveGate{}
	if config.AssignmentPolicy() == "strict" {
		gate = workflow.StrictGate{}
	}
	messageService := services.NewMessageService(messages, users, students, config.MailerFromEnv())
	dormService := services.NewDormService(students, applications, messageService, workflow.NewStateMachine(time.Now), gate)
	authService := services.NewAuthService(users, students)

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = config.LogWriter

	// Create Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Setup routes
	routes.SetupRoutes(router, routes.Handlers{
		Accounts:      authService,
		Auth:          controllers.NewAuthController(authService),
		Student:       controllers.NewStudentApplicationController(dormService),
		Applications:  controllers.NewAdminApplicationController(dormService, services.NewExportService()),
		Students:      controllers.NewStudentController(dormService),
		Messages:      controllers.NewMessageController(messageService),
		Announcements: controllers.NewAnnouncementController(services.NewAnnouncementService(announcements)),
	})

	// Start server
	port := config.GetEnv("SERVER_PORT", "8080")

	log.Printf("🚀 Server starting on port %s", port)
	log.Printf("🏠 Assignment policy: %s", config.AssignmentPolicy())
	if ginMode == "release" {
		log.Printf("🏭 Running in production mode")
	} else {
		log.Printf("🔧 Running in development mode")
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
