// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/usecase/auth"
	"github.com/duitku/backend/internal/application/usecase/category"
	"github.com/duitku/backend/internal/application/usecase/report"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/infra/server/router"
	"github.com/duitku/backend/internal/integration/adapters"
	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
	"github.com/duitku/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case reports are always computed directly.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	var reportCache adapter.ReportCache
	if redisClient != nil {
		reportCache = adapters.NewReportCache(redisClient, cfg.Redis.CacheTTL)
	}

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, reportCache)
	seedCategoriesUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, seedCategoriesUseCase)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, reportCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)

	// Create report use cases
	summaryUseCase := report.NewGetSummaryUseCase(transactionRepo, reportCache)
	monthlyStatsUseCase := report.NewGetMonthlyStatsUseCase(transactionRepo, reportCache)
	breakdownUseCase := report.NewGetCategoryBreakdownUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
		seedCategoriesUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	reportController := controller.NewReportController(
		summaryUseCase,
		monthlyStatsUseCase,
		breakdownUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
