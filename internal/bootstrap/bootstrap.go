package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tolgaakgoz/attendly/internal/app/controllers"
	appMigrations "github.com/tolgaakgoz/attendly/internal/app/migrations"
	appRepos "github.com/tolgaakgoz/attendly/internal/app/repositories"
	appRoutes "github.com/tolgaakgoz/attendly/internal/app/routes"
	appServices "github.com/tolgaakgoz/attendly/internal/app/services"
	"github.com/tolgaakgoz/attendly/internal/cache"
	"github.com/tolgaakgoz/attendly/internal/config"
	"github.com/tolgaakgoz/attendly/internal/db"
	appMiddleware "github.com/tolgaakgoz/attendly/internal/middleware"
	pkgAuth "github.com/tolgaakgoz/attendly/internal/pkg/auth"
	"github.com/tolgaakgoz/attendly/internal/pkg/filestorage"
	"github.com/tolgaakgoz/attendly/internal/pkg/helpers"
	"github.com/tolgaakgoz/attendly/internal/pkg/logger"
	"github.com/tolgaakgoz/attendly/internal/pkg/metrics"
	"github.com/tolgaakgoz/attendly/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	SummaryCache         *cache.SummaryCache
	AuthService          *appServices.AuthService
	UserService          *appServices.UserService
	LeaveService         *appServices.LeaveService
	AttendanceService    *appServices.AttendanceService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	LeaveController      *appControllers.LeaveController
	AttendanceController *appControllers.AttendanceController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	LoginLimiter         *appMiddleware.TokenBucket
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	if cfg.Redis.Enabled {
		deps.SummaryCache = cache.NewSummaryCache(cfg.Redis.Addr)
		if deps.SummaryCache.Healthy(context.Background()) {
			lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Summary cache enabled")
		} else {
			lgr.Warn().Str("addr", cfg.Redis.Addr).Msg("Summary cache unreachable, serving without it")
		}
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.FileStorage)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.UserRepository,
		database,
		deps.SummaryCache,
	)
	deps.LeaveService = appServices.NewLeaveService(
		deps.Repos.LeaveRequestRepository,
		deps.Repos.UserRepository,
		deps.Repos.AttendanceRepository,
		database,
		deps.FileStorage,
		deps.SummaryCache,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.LoginLimiter = appMiddleware.NewTokenBucket(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginPerMinute)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.LeaveController = appControllers.NewLeaveController(deps.LeaveService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(metrics.RequestMetrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.LeaveController,
		deps.AttendanceController,
		deps.AuthMiddleware,
		deps.LoginLimiter,
	)

	return router
}
