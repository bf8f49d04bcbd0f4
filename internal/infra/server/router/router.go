// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAuthRoutes()
	r.setupCategoryRoutes()
	r.setupTransactionRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAuthRoutes configures authentication and profile endpoints.
func (r *Router) setupAuthRoutes() {
	if r.authController == nil || r.loginRateLimiter == nil {
		return
	}

	auth := r.engine.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
	}

	profile := r.engine.Group("/auth")
	profile.Use(r.authMiddleware.Authenticate())
	{
		profile.GET("/profile", r.authController.GetProfile)
		profile.PUT("/profile", r.authController.UpdateProfile)
		profile.PUT("/change-password", r.authController.ChangePassword)
	}
}

// setupCategoryRoutes configures category endpoints.
func (r *Router) setupCategoryRoutes() {
	if r.categoryController == nil || r.authMiddleware == nil {
		return
	}

	categories := r.engine.Group("/categories")
	categories.Use(r.authMiddleware.Authenticate())
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.POST("/seed", r.categoryController.Seed)
		categories.DELETE("/:id", r.categoryController.Delete)
	}
}

// setupTransactionRoutes configures transaction and report endpoints.
func (r *Router) setupTransactionRoutes() {
	if r.transactionController == nil || r.authMiddleware == nil {
		return
	}

	transactions := r.engine.Group("/transactions")
	transactions.Use(r.authMiddleware.Authenticate())
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)

		if r.reportController != nil {
			transactions.GET("/summary", r.reportController.Summary)
			transactions.GET("/stats/monthly", r.reportController.MonthlyStats)
			transactions.GET("/stats/categories", r.reportController.CategoryBreakdown)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
