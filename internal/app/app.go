package app

import (
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/ai"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/briefing"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/config"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/handlers"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/interfaces"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/mcp"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/models"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/portfolio"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/storage"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/store"
)

// App holds all application components and dependencies.
type App struct {
	Config  *config.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager

	Watchlist   *store.WatchlistStore
	Credentials *store.CredentialStore
	Briefing    *briefing.Service
	Portfolio   *portfolio.Pipeline

	// HTTP handlers
	HealthHandler        *handlers.HealthHandler
	VersionHandler       *handlers.VersionHandler
	DashboardHandler     *handlers.DashboardHandler
	PortfolioPageHandler *handlers.PortfolioPageHandler
	SettingsHandler      *handlers.SettingsHandler
	WatchlistHandler     *handlers.WatchlistHandler
	BriefingHandler      *handlers.BriefingHandler
	PortfolioHandler     *handlers.PortfolioHandler
	MCPHandler           *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	storageManager, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, err
	}
	a.Storage = storageManager

	kv := storageManager.KeyValueStorage()
	a.Watchlist = store.NewWatchlistStore(kv, logger)
	a.Credentials = store.NewCredentialStore(kv, models.Credentials{
		ChatAPIKey:   cfg.Keys.ChatAPIKey,
		VisionAPIKey: cfg.Keys.VisionAPIKey,
	}, logger)

	chatClient := ai.NewPerplexityClient(cfg.AI.ChatBaseURL, cfg.AI.ChatModel)
	visionClient := ai.NewGeminiClient(cfg.AI.VisionBaseURL, cfg.AI.VisionModel)

	a.Briefing = briefing.NewService(chatClient, logger)
	a.Portfolio = portfolio.NewPipeline(visionClient, chatClient, logger)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.DashboardHandler = handlers.NewDashboardHandler(a.Logger, a.Watchlist)
	a.PortfolioPageHandler = handlers.NewPortfolioPageHandler(a.Logger)
	a.SettingsHandler = handlers.NewSettingsHandler(a.Logger, a.Credentials)
	a.WatchlistHandler = handlers.NewWatchlistHandler(a.Logger, a.Watchlist)
	a.BriefingHandler = handlers.NewBriefingHandler(a.Logger, a.Briefing, a.Watchlist, a.Credentials)
	a.PortfolioHandler = handlers.NewPortfolioHandler(a.Logger, a.Portfolio, a.Credentials)
	a.MCPHandler = mcp.NewHandler(a.Logger, a.Briefing, a.Watchlist, a.Credentials)
}

// Close releases application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Warn().Str("error", err.Error()).Msg("storage close failed")
			return err
		}
	}
	return nil
}
