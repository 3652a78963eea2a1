// Package app holds application components and dependency wiring.
package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/handlers"
	"github.com/ternarybob/confero/internal/interfaces"
	"github.com/ternarybob/confero/internal/services/comparison"
	"github.com/ternarybob/confero/internal/services/llm"
	"github.com/ternarybob/confero/internal/services/marketdata"
	"github.com/ternarybob/confero/internal/services/narrative"
	"github.com/ternarybob/confero/internal/yahoo"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Market data services
	YahooClient       *yahoo.Client
	MarketDataService interfaces.MarketDataService
	ComparisonBuilder *comparison.Builder

	// LLM service (cloud provider selected by configuration)
	LLMService       interfaces.LLMService
	NarrativeService *narrative.Service

	// HTTP handlers
	APIHandler     *handlers.APIHandler
	CompareHandler *handlers.CompareHandler
	PageHandler    *handlers.PageHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.initHandlers()

	app.Logger.Info().
		Str("provider", string(cfg.LLM.DefaultProvider)).
		Str("market_base_url", cfg.Market.BaseURL).
		Msg("Application initialized")

	return app, nil
}

// initServices creates the market data and LLM services.
func (a *App) initServices() error {
	timeout, err := a.Config.Market.TimeoutDuration()
	if err != nil {
		return fmt.Errorf("invalid market timeout: %w", err)
	}

	clientOpts := []yahoo.ClientOption{
		yahoo.WithTimeout(timeout),
		yahoo.WithLogger(a.Logger),
	}
	if a.Config.Market.BaseURL != "" {
		clientOpts = append(clientOpts, yahoo.WithBaseURL(a.Config.Market.BaseURL))
	}
	a.YahooClient = yahoo.NewClient(clientOpts...)

	a.MarketDataService = marketdata.NewService(
		a.YahooClient,
		a.Config.Market.DefaultRange,
		a.Config.Market.DefaultInterval,
	)
	a.ComparisonBuilder = comparison.NewBuilder(a.MarketDataService)

	// A missing API key for the selected provider is fatal; the caller
	// exits before the server starts.
	llmService, err := llm.NewLLMService(a.Config, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM service: %w", err)
	}
	a.LLMService = llmService
	a.NarrativeService = narrative.NewService(llmService)

	return nil
}

// initHandlers creates the HTTP handlers.
func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.CompareHandler = handlers.NewCompareHandler(a.ComparisonBuilder, a.NarrativeService)
	a.PageHandler = handlers.NewPageHandler(a.Logger, handlers.PageDefaults{
		Left:  a.Config.Market.DefaultLeft,
		Right: a.Config.Market.DefaultRight,
	})
}

// Close releases application resources.
func (a *App) Close(ctx context.Context) error {
	if a.LLMService != nil {
		if err := a.LLMService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("LLM service close failed")
		}
	}
	a.Logger.Info().Msg("Application closed")
	return nil
}
