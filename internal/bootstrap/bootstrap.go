package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/collegeforms/internal/app/controllers"
	appRepos "github.com/yigit/collegeforms/internal/app/repositories"
	appRoutes "github.com/yigit/collegeforms/internal/app/routes"
	appServices "github.com/yigit/collegeforms/internal/app/services"
	"github.com/yigit/collegeforms/internal/config"
	"github.com/yigit/collegeforms/internal/db"
	appMiddleware "github.com/yigit/collegeforms/internal/middleware"
	"github.com/yigit/collegeforms/internal/pkg/logger"
)

// ConfigPath is where LoadConfigAndSetupLogger looks for the YAML config
var ConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	CollegeFormService    appServices.CollegeFormService // Interface type
	PageController        *appControllers.PageController
	CollegeFormController *appControllers.CollegeFormController
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	if err := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		File:   cfg.Logging.File,
	}); err != nil {
		// Keep running with stdout only
		logger.Warn().Err(err).Msg("Log file unavailable")
	}

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the single storage handle and verifies it answers.
// The CollegeForm table is assumed to exist.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers
// over the given storage handle.
func BuildDependencies(cfg *config.Config, store appRepos.DBTX, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)
	deps.CollegeFormService = appServices.NewCollegeFormService(deps.Repos.CollegeFormRepository)

	deps.PageController = appControllers.NewPageController(cfg.Server.IndexFile)
	deps.CollegeFormController = appControllers.NewCollegeFormController(deps.CollegeFormService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	deps.Logger.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())
	if cfg.Server.SerializeRequests {
		router.Use(appMiddleware.Serialize())
	}

	appRoutes.SetupRouter(router, deps.PageController, deps.CollegeFormController)

	return router
}
