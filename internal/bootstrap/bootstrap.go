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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/intered/portal/internal/app/auth"
	appControllers "github.com/intered/portal/internal/app/controllers"
	appMigrations "github.com/intered/portal/internal/app/migrations"
	appRepos "github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/app/repositories/memory"
	appRoutes "github.com/intered/portal/internal/app/routes"
	appServices "github.com/intered/portal/internal/app/services"
	"github.com/intered/portal/internal/config"
	"github.com/intered/portal/internal/db"
	appMiddleware "github.com/intered/portal/internal/middleware"
	pkgAuth "github.com/intered/portal/internal/pkg/auth"
	"github.com/intered/portal/internal/pkg/helpers"
	"github.com/intered/portal/internal/pkg/logger"
	"github.com/intered/portal/internal/pkg/session"
	"github.com/intered/portal/internal/pkg/validation"
	"github.com/intered/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Storage            appRepos.Storage
	Sessions           session.Store
	SessionManager     *appAuth.SessionManager
	AuthzService       *appAuth.AuthorizationService
	JWTService         *pkgAuth.JWTService
	AuthService        *appServices.AuthService
	UserService        appServices.UserService
	StudentService     appServices.StudentService
	UniversityService  appServices.UniversityService
	ProgramService     appServices.ProgramService
	AgentService       appServices.AgentService
	ApplicationService appServices.ApplicationService
	StatsService       appServices.StatsService
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Controllers        appRoutes.Controllers
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "intered-portal",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured storage backend. For postgres it
// connects, applies migrations and returns the pool for shutdown; the
// memory driver returns a nil pool.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.Storage, *db.PostgresDB, error) {
	if cfg.Database.Driver == "memory" {
		lgr.Warn().Msg("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return appRepos.NewRepositories(database.Pool), database, nil
}

// SetupSessionStore opens the configured session store. The redis client is
// returned so that it can be closed on shutdown; it is nil for the memory store.
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (session.Store, *redis.Client, error) {
	if cfg.Session.Store != "redis" {
		lgr.Info().Msg("Using in-process session store")
		return session.NewMemoryStore(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := session.NewRedisStore(client, cfg.Redis.Prefix)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = client.Close()
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to reach redis")
		return nil, nil, err
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis session store connected")
	return store, client, nil
}

// BuildDependencies initializes services and controllers and seeds the
// default admin account.
func BuildDependencies(ctx context.Context, cfg *config.Config, storage appRepos.Storage, sessions session.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Storage:  storage,
		Sessions: sessions,
		Logger:   lgr,
	}

	hasher := pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)
	sessionTTL := helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour)

	admin := seed.AdminAccount{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
		Email:    cfg.Auth.AdminEmail,
	}
	if err := seed.CreateDefaultData(ctx, storage, hasher, admin, lgr); err != nil {
		return nil, fmt.Errorf("failed to create default data: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.SessionManager = appAuth.NewSessionManager(sessions, storage, sessionTTL)

	if cfg.JWT.Enabled {
		deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			SecretKey:      cfg.JWT.Secret,
			AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
			TokenIssuer:    cfg.JWT.Issuer,
		})
	}

	deps.AuthService = appServices.NewAuthService(storage, hasher, deps.SessionManager, deps.AuthzService, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(storage, hasher, lgr)
	deps.StudentService = appServices.NewStudentService(storage, lgr)
	deps.UniversityService = appServices.NewUniversityService(storage, lgr)
	deps.ProgramService = appServices.NewProgramService(storage, lgr)
	deps.AgentService = appServices.NewAgentService(storage, lgr)
	deps.ApplicationService = appServices.NewApplicationService(storage, lgr)
	deps.StatsService = appServices.NewStatsService(storage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, cfg.Session.CookieName)

	cookie := appControllers.CookieConfig{
		Name:     cfg.Session.CookieName,
		TTL:      sessionTTL,
		Secure:   cfg.Session.Secure,
		SameSite: cfg.Session.SameSite,
	}
	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(deps.AuthService, cookie, lgr),
		User:        appControllers.NewUserController(deps.UserService),
		Student:     appControllers.NewStudentController(deps.StudentService),
		University:  appControllers.NewUniversityController(deps.UniversityService),
		Program:     appControllers.NewProgramController(deps.ProgramService),
		Agent:       appControllers.NewAgentController(deps.AgentService),
		Application: appControllers.NewApplicationController(deps.ApplicationService),
		Stats:       appControllers.NewStatsController(deps.StatsService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.Register()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
