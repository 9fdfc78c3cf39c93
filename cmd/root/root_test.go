package root_test

import (
	"testing"

	"mainstack/revenue/cmd/root"
	"mainstack/revenue/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "revenue", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "revenue dashboard")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-format", "state-file", "base-url"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{
		Log:   config.LogConfig{Level: "info", Format: "text"},
		API:   config.APIConfig{BaseURL: "https://example.com"},
		State: config.StateConfig{File: "filter-state.yaml"},
	}

	require.NoError(t, root.Cmd.PersistentFlags().Set("log-level", "debug"))
	require.NoError(t, root.Cmd.PersistentFlags().Set("base-url", "http://localhost:9000"))
	t.Cleanup(func() {
		_ = root.Cmd.PersistentFlags().Set("log-level", "")
		_ = root.Cmd.PersistentFlags().Set("base-url", "")
	})

	root.ApplyFlags(root.Cmd, cfg)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	assert.Equal(t, "filter-state.yaml", cfg.State.File)
}
