// cmd/boathouse-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/lmrc/boathouse/internal/api/rest/v1"
	"github.com/lmrc/boathouse/internal/app"
	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/infrastructure/persistence"
	"github.com/lmrc/boathouse/internal/infrastructure/persistence/models"
	"github.com/lmrc/boathouse/internal/pkg/config"
	"github.com/lmrc/boathouse/internal/pkg/logger"
	"github.com/lmrc/boathouse/internal/pkg/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is a development convenience; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/server.yaml"
	}

	serverConfig, err := config.InitializeServerConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&serverConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Merge environment overrides with defaults and validate. A failure here
	// is a deployment defect: log every invalid field and refuse to start.
	source := config.EnvSource()
	runtimeConfig, err := config.Load(source)
	if err != nil {
		logViolations(log, err)
		return fmt.Errorf("invalid runtime configuration: %w", err)
	}

	clubProfile, err := assembleProfile(serverConfig, source, runtimeConfig)
	if err != nil {
		logViolations(log, err)
		return fmt.Errorf("invalid club profile: %w", err)
	}

	deps, err := initializeDependencies(serverConfig, clubProfile, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(serverConfig, deps, runtimeConfig, log)
}

// assembleProfile builds the deployment profile: generated defaults, overlaid
// with the environment's club-branding overrides, completed with the
// integration endpoint, then validated whole.
func assembleProfile(serverConfig *config.ServerConfig, source config.Source, runtimeConfig config.Config) (*profile.ClubProfile, error) {
	p := profile.NewDefaultProfile(serverConfig.Club.ID, serverConfig.Club.Name)
	p.Apply(config.ClubOverrides(source))
	if p.RevSport.BaseURL == "" {
		p.RevSport.BaseURL = runtimeConfig.BaseURL
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func logViolations(log logger.Logger, err error) {
	if errs, ok := validation.AsErrors(err); ok {
		for _, v := range errs {
			log.Error("Configuration violation: ", v.String())
		}
		return
	}
	log.Error("Configuration error: ", err)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	profileService profile.ProfileService
	sessionService sessions.SessionService
}

// initializeDependencies sets up all application components
func initializeDependencies(serverConfig *config.ServerConfig, clubProfile *profile.ClubProfile, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(serverConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.SessionModel{}, &models.MetadataModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	if err := seedSessions(sessionRepo, clubProfile, log); err != nil {
		return nil, fmt.Errorf("failed to seed sessions: %w", err)
	}

	profileService, err := app.NewProfileService(clubProfile, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	sessionService, err := app.NewSessionService(sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	return &appDependencies{
		profileService: profileService,
		sessionService: sessionService,
	}, nil
}

// seedSessions populates an empty store from the profile's session list.
func seedSessions(repo sessions.SessionRepository, clubProfile *profile.ClubProfile, log logger.Logger) error {
	ctx := context.Background()

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range clubProfile.Sessions {
		if err := repo.Create(ctx, &clubProfile.Sessions[i], "startup-seed"); err != nil {
			return err
		}
	}
	log.Info("Seeded session store with ", len(clubProfile.Sessions), " sessions")
	return nil
}

func startServerWithGracefulShutdown(serverConfig *config.ServerConfig, deps *appDependencies, runtimeConfig config.Config, log logger.Logger) error {
	if !runtimeConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(serverConfig.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = serverConfig.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	v1.SetupRoutes(r, deps.profileService, deps.sessionService, runtimeConfig)

	srv := &http.Server{
		Addr:    ":" + serverConfig.Server.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on port ", serverConfig.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Received signal ", sig, ", shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
