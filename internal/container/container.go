// Package container provides dependency injection for the revenue application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"mainstack/revenue/internal/api"
	"mainstack/revenue/internal/common"
	"mainstack/revenue/internal/config"
	"mainstack/revenue/internal/filter"
	"mainstack/revenue/internal/filterstate"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/report"
	"mainstack/revenue/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. All fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	location *time.Location

	engine    *filter.Engine
	state     *filterstate.State
	store     store.Store
	client    *api.Client
	fetcher   *api.Fetcher
	exporter  *common.CSVExporter
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, cfg.NewLogger())
}

// NewContainerWithLogger wires dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	loc, err := cfg.Display.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Display.Timezone, err)
	}

	engine := filter.NewEngine(loc)
	state := filterstate.New(engine, logger)
	criteriaStore := store.NewCriteriaStore(cfg.State.File, logger)

	retry := api.DefaultRetryPolicy()
	retry.MaxRetries = cfg.API.MaxRetries
	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout(),
		StaleTime: cfg.API.StaleTime(),
		Retry:     retry,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldEndpoint, client.BaseURL()),
		logging.F(logging.FieldStateFile, criteriaStore.File))

	return &Container{
		logger:    logger,
		config:    cfg,
		location:  loc,
		engine:    engine,
		state:     state,
		store:     criteriaStore,
		client:    client,
		fetcher:   api.NewFetcher(client, state, logger),
		exporter:  common.NewCSVExporter(cfg.CSV.DelimiterRune(), logger),
		generator: report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLocation returns the timezone dates are interpreted in.
func (c *Container) GetLocation() *time.Location {
	return c.location
}

// GetEngine returns the filter engine.
func (c *Container) GetEngine() *filter.Engine {
	return c.engine
}

// GetState returns the shared filter state.
func (c *Container) GetState() *filterstate.State {
	return c.state
}

// GetStore returns the criteria store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetClient returns the revenue API client.
func (c *Container) GetClient() *api.Client {
	return c.client
}

// GetFetcher returns the fetcher feeding the filter state.
func (c *Container) GetFetcher() *api.Fetcher {
	return c.fetcher
}

// GetExporter returns the CSV exporter.
func (c *Container) GetExporter() *common.CSVExporter {
	return c.exporter
}

// GetGenerator returns the summary generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.client.Invalidate()
	c.logger.Debug("Container closed")
	return nil
}
