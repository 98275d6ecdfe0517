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

	appControllers "github.com/campushq/registrar/internal/app/controllers"
	appMigrations "github.com/campushq/registrar/internal/app/migrations"
	appRepos "github.com/campushq/registrar/internal/app/repositories"
	appRoutes "github.com/campushq/registrar/internal/app/routes"
	appServices "github.com/campushq/registrar/internal/app/services"
	"github.com/campushq/registrar/internal/config"
	"github.com/campushq/registrar/internal/db"
	appMiddleware "github.com/campushq/registrar/internal/middleware"
	pkgAuth "github.com/campushq/registrar/internal/pkg/auth"
	"github.com/campushq/registrar/internal/pkg/helpers"
	"github.com/campushq/registrar/internal/pkg/logger"
	"github.com/campushq/registrar/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	StudentService      appServices.StudentService
	CourseService       appServices.CourseService
	ExportService       appServices.ExportService
	DashboardService    appServices.DashboardService
	AuthController      *appControllers.AuthController
	DashboardController *appControllers.DashboardController
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	ExportController    *appControllers.ExportController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	ResetTokens         *pkgAuth.ResetTokenService
	Logger              zerolog.Logger
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
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Startup continues; the admin account can be created manually.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Sessions that expired while the server was down are swept once at boot.
	if removed, err := deps.Repos.SessionRepository.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to sweep expired sessions")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Expired sessions swept")
	}

	deps.ResetTokens = pkgAuth.NewResetTokenService(pkgAuth.ResetTokenConfig{
		SecretKey: cfg.Auth.ResetTokenSecret,
		Expiry:    helpers.ParseDuration(cfg.Auth.ResetTokenExpiry, time.Hour),
		Issuer:    cfg.Auth.Issuer,
	})

	sessionTTL := helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.SessionRepository,
		deps.ResetTokens,
		sessionTTL,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.CourseRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ExportService = appServices.NewExportService(deps.Repos.StudentRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		cfg.Dashboard.Notices,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.Repos.SessionRepository,
		deps.Repos.UserRepository,
		cfg.Session.CookieName,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.Session.CookieName, sessionTTL, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.CourseService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, lgr)
	deps.ExportController = appControllers.NewExportController(deps.ExportService, lgr)

	return deps, nil
}

// SetupRouter creates the gin engine, loads templates and wires routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.DashboardController,
		deps.StudentController,
		deps.CourseController,
		deps.ExportController,
		deps.AuthMiddleware,
	)

	return router
}
