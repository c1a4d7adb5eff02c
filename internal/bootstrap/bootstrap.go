package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mvidal/gestifp/internal/app/controllers"
	appMigrations "github.com/mvidal/gestifp/internal/app/migrations"
	appRepos "github.com/mvidal/gestifp/internal/app/repositories"
	appRoutes "github.com/mvidal/gestifp/internal/app/routes"
	appServices "github.com/mvidal/gestifp/internal/app/services"
	"github.com/mvidal/gestifp/internal/config"
	"github.com/mvidal/gestifp/internal/db"
	appMiddleware "github.com/mvidal/gestifp/internal/middleware"
	"github.com/mvidal/gestifp/internal/pkg/cache"
	"github.com/mvidal/gestifp/internal/pkg/confirm"
	"github.com/mvidal/gestifp/internal/pkg/helpers"
	"github.com/mvidal/gestifp/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       *appServices.StudentService
	CycleService         *appServices.CycleService
	RecordService        *appServices.RecordService
	EnrollmentService    *appServices.EnrollmentService
	AcademicService      *appServices.AcademicService
	StudentController    *appControllers.StudentController
	CycleController      *appControllers.CycleController
	RecordController     *appControllers.RecordController
	EnrollmentController *appControllers.EnrollmentController
	AcademicController   *appControllers.AcademicController
	Repos                *appRepos.Repositories
	CertCache            *cache.CertificateCache
	Confirmations        *confirm.Manager
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// SetupCache connects to Redis for certificate caching. A connection failure
// is not fatal: the application degrades to recomputing resolutions.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) *cache.CertificateCache {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Certificate cache disabled by configuration")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisCache, err := cache.New(ctx, cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		lgr.Warn().Err(err).Msg("Redis unavailable, certificate caching disabled")
		return nil
	}

	lgr.Info().Str("addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)).Msg("Certificate cache connected")
	return cache.NewCertificateCache(redisCache, cache.DefaultCertificateTTL)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.CertCache = SetupCache(cfg, lgr)
	deps.Confirmations = confirm.NewManager(
		helpers.ParseDuration(cfg.Deletion.ConfirmTimeout, confirm.DefaultTimeout))

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.RecordRepository,
		deps.Repos.CycleRepository,
		deps.Repos.EnrollmentRepository,
		deps.CertCache,
	)
	deps.CycleService = appServices.NewCycleService(
		deps.Repos.CycleRepository,
		deps.Repos.ModuleRepository,
	)
	deps.RecordService = appServices.NewRecordService(
		dbPool,
		deps.Repos.RecordRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CycleRepository,
		deps.CertCache,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.RecordRepository,
		deps.Repos.ModuleRepository,
		deps.CertCache,
	)
	deps.AcademicService = appServices.NewAcademicService(
		deps.Repos.StudentRepository,
		deps.Repos.CycleRepository,
		deps.Repos.ModuleRepository,
		deps.Repos.EnrollmentRepository,
		deps.CertCache,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CycleController = appControllers.NewCycleController(deps.CycleService)
	deps.RecordController = appControllers.NewRecordController(deps.RecordService, deps.Confirmations)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.AcademicController = appControllers.NewAcademicController(deps.AcademicService)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CycleController,
		deps.RecordController,
		deps.EnrollmentController,
		deps.AcademicController,
	)

	return router
}
