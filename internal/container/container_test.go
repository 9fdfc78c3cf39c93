package container

import (
	"path/filepath"
	"testing"

	"mainstack/revenue/internal/config"
	"mainstack/revenue/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log:     config.LogConfig{Level: "info", Format: "text"},
		API:     config.APIConfig{BaseURL: "https://example.com", TimeoutSeconds: 5, StaleSeconds: 60, MaxRetries: 1},
		CSV:     config.CSVConfig{Delimiter: ";"},
		State:   config.StateConfig{File: filepath.Join(t.TempDir(), "state.yaml")},
		Display: config.DisplayConfig{Timezone: "UTC", PageSize: 10, Currency: "USD"},
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*config.Config)
		nilConfig   bool
		expectError string
	}{
		{name: "nil config", nilConfig: true, expectError: "configuration cannot be nil"},
		{name: "valid config"},
		{name: "bad timezone", modify: func(c *config.Config) { c.Display.Timezone = "Nowhere/Land" }, expectError: "failed to load timezone"},
		{name: "bad base url", modify: func(c *config.Config) { c.API.BaseURL = "not a url" }, expectError: "failed to create API client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *config.Config
			if !tt.nilConfig {
				cfg = testConfig(t)
				if tt.modify != nil {
					tt.modify(cfg)
				}
			}

			c, err := NewContainer(cfg)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NoError(t, c.Close())
		})
	}
}

func TestContainer_Getters(t *testing.T) {
	cfg := testConfig(t)
	logger := logging.NewMockLogger()

	c, err := NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)

	assert.Same(t, cfg, c.GetConfig())
	assert.Equal(t, logger, c.GetLogger())
	assert.Equal(t, "UTC", c.GetLocation().String())
	assert.Equal(t, "UTC", c.GetEngine().Location.String())
	assert.NotNil(t, c.GetState())
	assert.NotNil(t, c.GetStore())
	assert.NotNil(t, c.GetFetcher())
	assert.NotNil(t, c.GetGenerator())
	assert.Equal(t, ';', c.GetExporter().Delimiter)
	assert.Equal(t, "https://example.com", c.GetClient().BaseURL())

	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestContainer_StateStartsUnfiltered(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	state := c.GetState()
	assert.False(t, state.HasAppliedFilter())
	assert.Zero(t, state.FilterCount())
	assert.Empty(t, state.FilteredData())
}
