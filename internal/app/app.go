package app

import (
	"fmt"
	"time"

	"workhub_backend/database"
	"workhub_backend/internal/auth"
	"workhub_backend/internal/config"
	"workhub_backend/internal/handlers"
	"workhub_backend/internal/logger"
	"workhub_backend/internal/middleware"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/routes"
	"workhub_backend/internal/services"
	"workhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает все зависимости и возвращает готовый *gin.Engine.
// Вынесено отдельно, чтобы интеграционные тесты поднимали тот же роутер
// поверх httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Валидатор и менеджер токенов
	v := validator.New()
	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLHrs)*time.Hour,
	)

	// 2. Репозитории
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewWorkerProfileRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()

	// 3. Сервисы
	serviceContainer := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, profileRepo, tokens),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo),
		WorkerService:      services.NewWorkerService(profileRepo),
	}

	// 4. Хэндлеры. Один и тот же auth guard у всех защищенных групп.
	base := handlers.NewBaseHandler(v)
	authGuard := middleware.AuthMiddleware(tokens, userRepo)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, serviceContainer.AuthService, tokens, userRepo, cfg.Server.Env),
		JobHandler:         handlers.NewJobHandler(base, serviceContainer.JobService, authGuard),
		ApplicationHandler: handlers.NewApplicationHandler(base, serviceContainer.ApplicationService, authGuard),
		WorkerHandler:      handlers.NewWorkerHandler(base, serviceContainer.WorkerService, authGuard),
	}

	// 5. Gin + сквозные middleware
	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}
