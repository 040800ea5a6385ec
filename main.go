package main

import (
	"context"
	"log"

	"taskmanager-be/internal/config"
	"taskmanager-be/internal/controllers"
	"taskmanager-be/internal/database"
	"taskmanager-be/internal/middleware"
	"taskmanager-be/internal/repository"
	"taskmanager-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	client, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		// Close connection when the process exits
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Failed to disconnect from database: %v", err)
		}
	}()

	db := client.Database(cfg.DatabaseName)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo)
	memberService := service.NewTeamMemberService(memberRepo)

	// Initialize controllers
	homeController := controllers.NewHomeController()
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	taskController := controllers.NewTaskController(taskService)
	memberController := controllers.NewTeamMemberController(memberService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Cross-origin access is restricted to the one configured origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(generalRateLimiter.LimitMiddleware())

	// Connectivity check
	router.GET("/", homeController.Home)

	// Auth routes with stricter rate limiting
	auth := router.Group("/")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/signup/", authController.Signup)
		auth.POST("/login/", authController.Login)
	}

	// User routes
	router.GET("/allusers/", userController.ListUsers)

	// Task routes
	router.POST("/allTasks/", taskController.CreateTask)
	router.GET("/allTasks/", taskController.ListTasks)
	router.PUT("/allTasks/:taskId", taskController.UpdateTask)
	router.DELETE("/allTasks/:taskId", taskController.DeleteTask)

	// Team member routes
	router.POST("/teamMembers/", memberController.CreateTeamMember)
	router.GET("/teamMembers/", memberController.ListTeamMembers)
	router.PUT("/teamMembers/:teamMemberId", memberController.UpdateTeamMember)
	router.DELETE("/teamMembers/:teamMemberId", memberController.DeleteTeamMember)

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
