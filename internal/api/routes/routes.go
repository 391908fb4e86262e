package routes

import (
	"net/http"

	"notes-saas-backend/internal/api/handlers"
	"notes-saas-backend/internal/api/middleware"
	"notes-saas-backend/internal/auth"
	"notes-saas-backend/internal/config"
	"notes-saas-backend/internal/repository"
	"notes-saas-backend/internal/service"
	"notes-saas-backend/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "notes-saas-backend/docs"
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
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Initialize token manager and auth middleware
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(tokens, userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, validator)
	noteService := service.NewNoteService(noteRepo, validator)
	tenantService := service.NewTenantService(tenantRepo, noteRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, validator)
	noteHandler := handlers.NewNoteHandler(noteService, validator)
	tenantHandler := handlers.NewTenantHandler(tenantService)

	// Health check routes
	health := router.Group("/api/health")
	{
		health.GET("", healthHandler.Health)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/live", healthHandler.Live)
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)

		authenticated := authGroup.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.GET("/me", authHandler.Me)
			authenticated.POST("/invite", authMiddleware.RequireAdmin(), authHandler.Invite)
			authenticated.PUT("/profile", authHandler.UpdateProfile)
			authenticated.PUT("/change-password", authHandler.ChangePassword)
		}
	}

	// Note routes
	notes := router.Group("/api/notes")
	notes.Use(authMiddleware.RequireAuth())
	{
		notes.POST("", noteHandler.Create)
		notes.GET("", noteHandler.List)
		notes.GET("/:id", noteHandler.Get)
		notes.PUT("/:id", noteHandler.Update)
		notes.DELETE("/:id", noteHandler.Delete)
		notes.PATCH("/:id/archive", noteHandler.ToggleArchive)
	}

	// Tenant routes
	tenants := router.Group("/api/tenants")
	tenants.Use(authMiddleware.RequireAuth())
	{
		tenants.GET("/:slug", tenantHandler.GetInfo)
		tenants.POST("/:slug/upgrade", authMiddleware.RequireAdmin(), tenantHandler.Upgrade)
		tenants.GET("/:slug/stats", authMiddleware.RequireAdmin(), tenantHandler.Stats)
	}

	// Embedded frontend
	if static, err := web.Static(); err == nil {
		fileServer := http.FileServer(http.FS(static))
		router.GET("/", gin.WrapH(fileServer))
		router.GET("/static/*filepath", gin.WrapH(http.StripPrefix("/static", fileServer)))
	} else {
		logrus.WithError(err).Warn("embedded frontend unavailable")
	}

	// Fallback for unknown routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return router
}
