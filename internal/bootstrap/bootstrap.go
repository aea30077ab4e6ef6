package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uniplace/placement-backend/docs" // Import generated swagger docs
	appControllers "github.com/uniplace/placement-backend/internal/app/controllers"
	appMigrations "github.com/uniplace/placement-backend/internal/app/migrations"
	appRepos "github.com/uniplace/placement-backend/internal/app/repositories"
	appRoutes "github.com/uniplace/placement-backend/internal/app/routes"
	appServices "github.com/uniplace/placement-backend/internal/app/services"
	"github.com/uniplace/placement-backend/internal/config"
	"github.com/uniplace/placement-backend/internal/db"
	appMiddleware "github.com/uniplace/placement-backend/internal/middleware"
	pkgAuth "github.com/uniplace/placement-backend/internal/pkg/auth"
	"github.com/uniplace/placement-backend/internal/pkg/filestorage"
	"github.com/uniplace/placement-backend/internal/pkg/helpers"
	"github.com/uniplace/placement-backend/internal/pkg/logger"
	"github.com/uniplace/placement-backend/internal/pkg/mailer"
	"github.com/uniplace/placement-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService     *appServices.AuthService
	StudentService  *appServices.StudentService
	CompanyService  *appServices.CompanyService
	IngestService   *appServices.IngestService
	DriveService    *appServices.DriveService
	AudienceService *appServices.AudienceService
	EmailService    *appServices.EmailService
	StatsService    *appServices.StatsService
	ReportService   *appServices.ReportService
	BlogService     *appServices.BlogService
	SettingsService *appServices.SettingsService

	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	CompanyController   *appControllers.CompanyController
	DriveController     *appControllers.DriveController
	EmailController     *appControllers.EmailController
	DashboardController *appControllers.DashboardController
	ReportController    *appControllers.ReportController
	BlogController      *appControllers.BlogController
	SettingsController  *appControllers.SettingsController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Mailer         mailer.Mailer
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
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

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// File storage baseURL must match the static file serving endpoint
	storageBaseURL := cfg.Storage.BaseURL
	if storageBaseURL == "" {
		storageBaseURL = "http://localhost:" + cfg.Server.Port + "/uploads"
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, storageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Mailer = mailer.NewMailer(mailer.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BannerURL: cfg.SMTP.BannerURL,
	}, lgr)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.ResultRepository)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository)
	deps.IngestService = appServices.NewIngestService(
		deps.Repos.StudentRepository,
		deps.Repos.DriveRepository,
		deps.Repos.ResultRepository,
		database,
	)
	deps.DriveService = appServices.NewDriveService(deps.Repos.DriveRepository, deps.Repos.ResultRepository)
	deps.AudienceService = appServices.NewAudienceService(deps.Repos.StudentRepository, deps.Repos.ResultRepository)
	deps.EmailService = appServices.NewEmailService(deps.Mailer)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.StudentRepository,
		deps.Repos.DriveRepository,
		deps.Repos.CompanyRepository,
		deps.Repos.ResultRepository,
	)
	deps.ReportService = appServices.NewReportService(deps.Repos.StudentRepository, deps.Repos.ResultRepository)
	deps.BlogService = appServices.NewBlogService(deps.Repos.BlogRepository, deps.FileStorage)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService)
	deps.DriveController = appControllers.NewDriveController(deps.IngestService, deps.DriveService)
	deps.EmailController = appControllers.NewEmailController(deps.AudienceService, deps.EmailService)
	deps.DashboardController = appControllers.NewDashboardController(deps.StatsService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService, deps.AuthService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)

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

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CompanyController,
		deps.DriveController,
		deps.EmailController,
		deps.DashboardController,
		deps.ReportController,
		deps.BlogController,
		deps.SettingsController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
