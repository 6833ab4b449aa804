package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pageforge/landing-backend/internal/api"
	generationapi "github.com/pageforge/landing-backend/internal/api/generation"
	landingpageapi "github.com/pageforge/landing-backend/internal/api/landingpage"
	wizardapi "github.com/pageforge/landing-backend/internal/api/wizard"
	"github.com/pageforge/landing-backend/internal/config"
	"github.com/pageforge/landing-backend/internal/integration/images"
	"github.com/pageforge/landing-backend/internal/integration/openai"
	"github.com/pageforge/landing-backend/internal/pkg/formatter"
	"github.com/pageforge/landing-backend/internal/pkg/validator"
	"github.com/pageforge/landing-backend/internal/repository"
	"github.com/pageforge/landing-backend/internal/usecase/generation"
	"github.com/pageforge/landing-backend/internal/usecase/landingpage"
	"github.com/pageforge/landing-backend/internal/usecase/wizard"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	profileRepo := repository.NewProfilePostgres(db)
	sessionRepo := repository.NewWizardSessionPostgres(db)
	questionnaireRepo := repository.NewQuestionnairePostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var textConnector generation.TextConnector
	var imageConnector generationapi.ImageConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		textConnector = openai.NewMockConnector(logger)
		imageConnector = images.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		textConnector = openai.NewConnector(cfg.OpenAICfg, logger)
		imageConnector = images.NewConnector(cfg.ImagesCfg, logger)
	}

	// Initialize validators
	planValidator := validator.NewValidator(cfg.PricingPlans)
	logger.Info("Validators initialized", zap.Int("pricing_plans", len(cfg.PricingPlans)))

	// Initialize use cases
	generationUC := generation.NewUseCase(textConnector, cfg.OpenAICfg, logger)

	wizardUC := wizard.NewUseCase(
		cfg.WizardCfg,
		sessionRepo,
		profileRepo,
		questionnaireRepo,
		generationUC,
		planValidator,
		logger,
	)

	landingPageUC := landingpage.NewUseCase(questionnaireRepo, profileRepo, formatter.NewFactory(), logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	wizardHandler := wizardapi.NewHandler(wizardUC, planValidator)
	generationHandler := generationapi.NewHandler(generationUC, imageConnector, planValidator)
	landingPageHandler := landingpageapi.NewHandler(landingPageUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(wizardHandler, generationHandler, landingPageHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
