package routes

import (
	"log"

	"workforce-portal-backend/internal/api/handlers"
	"workforce-portal-backend/internal/api/middleware"
	"workforce-portal-backend/internal/auth"
	"workforce-portal-backend/internal/config"
	"workforce-portal-backend/internal/database/models"
	"workforce-portal-backend/internal/repository"
	"workforce-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	swapRepo := repository.NewShiftSwapRepository(db)
	rotaRepo := repository.NewRotaRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	environmentRepo := repository.NewEnvironmentRepository(db)
	accessRepo := repository.NewAccountAccessRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Leave-type catalog (built-in unless overridden by config file)
	leaveTypes, err := config.LoadLeaveTypes(cfg.LeaveTypesFile)
	if err != nil {
		log.Printf("Warning: failed to load leave types, using defaults: %v", err)
		leaveTypes = models.DefaultLeaveTypes
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	userService := service.NewUserService(userRepo, auditService, validator)
	rotaService := service.NewRotaService(rotaRepo, shiftRepo, userRepo, auditService, validator)
	shiftService := service.NewShiftService(shiftRepo, leaveRepo)
	swapService := service.NewShiftSwapService(swapRepo, shiftRepo, userRepo, notificationService, auditService, validator)
	leaveService := service.NewLeaveRequestService(leaveRepo, userRepo, notificationService, auditService, leaveTypes, validator)
	customerService := service.NewCustomerService(customerRepo, auditService, validator)
	environmentService := service.NewEnvironmentService(environmentRepo, customerRepo, auditService, validator)
	accessService := service.NewAccountAccessService(accessRepo, environmentRepo, userRepo, auditService, validator)
	reportService := service.NewReportService(leaveRepo, rotaRepo, userRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL())
	authHandler := auth.NewAuthHandler(authService, userService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	rotaHandler := handlers.NewRotaHandler(rotaService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	swapHandler := handlers.NewShiftSwapHandler(swapService)
	leaveHandler := handlers.NewLeaveRequestHandler(leaveService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	environmentHandler := handlers.NewEnvironmentHandler(environmentService, accessService)
	accessHandler := handlers.NewAccountAccessHandler(accessService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	auditHandler := handlers.NewAuditLogHandler(auditService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API routes - all endpoints require authentication
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())

	manageRoles := authMiddleware.RequireRole(models.RoleAdmin, models.RoleManager)
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	{
		// User routes
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", adminOnly, userHandler.CreateUser)
			users.POST("/me/password", userHandler.ChangePassword)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", adminOnly, userHandler.UpdateUser)
			users.DELETE("/:id", adminOnly, userHandler.DeleteUser)
		}

		// Rota routes
		rota := api.Group("/rota")
		{
			rota.POST("/generate", manageRoles, rotaHandler.GenerateRota)
			rota.GET("/:year", rotaHandler.GetRota)
			rota.POST("/:year/assign", manageRoles, rotaHandler.AssignRota)
		}

		// Shift routes
		shifts := api.Group("/shifts")
		{
			shifts.GET("", shiftHandler.GetSchedule)
			shifts.GET("/me", shiftHandler.GetMyShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
		}

		// Shift swap routes
		swaps := api.Group("/swaps")
		{
			swaps.GET("", swapHandler.GetMySwaps)
			swaps.POST("", swapHandler.ProposeSwap)
			swaps.GET("/:id", swapHandler.GetSwap)
			swaps.POST("/:id/respond", swapHandler.RespondToSwap)
			swaps.POST("/:id/cancel", swapHandler.CancelSwap)
		}

		// Leave routes
		leave := api.Group("/leave")
		{
			leave.GET("/types", leaveHandler.ListLeaveTypes)
			leave.GET("", leaveHandler.ListLeaveRequests)
			leave.POST("", leaveHandler.CreateLeaveRequest)
			leave.GET("/:id", leaveHandler.GetLeaveRequest)
			leave.POST("/:id/review", manageRoles, leaveHandler.ReviewLeaveRequest)
			leave.POST("/:id/cancel", leaveHandler.CancelLeaveRequest)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("", manageRoles, customerHandler.CreateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", manageRoles, customerHandler.UpdateCustomer)
			customers.DELETE("/:id", adminOnly, customerHandler.DeleteCustomer)
		}

		// Environment routes
		environments := api.Group("/environments")
		{
			environments.GET("", environmentHandler.ListEnvironments)
			environments.POST("", manageRoles, environmentHandler.CreateEnvironment)
			environments.GET("/:id", environmentHandler.GetEnvironment)
			environments.PUT("/:id", manageRoles, environmentHandler.UpdateEnvironment)
			environments.DELETE("/:id", adminOnly, environmentHandler.DeleteEnvironment)
			environments.GET("/:id/access", environmentHandler.GetEnvironmentAccess)
		}

		// Account access routes
		access := api.Group("/access")
		{
			access.GET("/me", accessHandler.GetMyAccess)
			access.PUT("/me", accessHandler.SetMyAccess)
			access.GET("/users/:id", manageRoles, accessHandler.GetUserAccess)
			access.PUT("/users/:id", manageRoles, accessHandler.SetUserAccess)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetMyNotifications)
			notifications.POST("/read-all", notificationHandler.MarkAllNotificationsRead)
			notifications.POST("/:id/read", notificationHandler.MarkNotificationRead)
		}

		// Audit routes
		api.GET("/audit", adminOnly, auditHandler.ListAuditLog)

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("/leave/:year", manageRoles, reportHandler.LeaveSummary)
			reports.GET("/availability", reportHandler.Availability)
		}
	}

	return router
}
