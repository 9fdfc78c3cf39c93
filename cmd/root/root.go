// Package root contains the root command for the application
package root

import (
	"fmt"

	"mainstack/revenue/internal/config"
	"mainstack/revenue/internal/container"
	"mainstack/revenue/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	StateFile  string
	BaseURL    string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer is built before any command runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "revenue",
		Short: "A terminal revenue dashboard with transaction filtering.",
		Long: `revenue fetches your wallet, stats and transactions from the revenue API
and shows them in the terminal. Filters by date range, transaction type and
status are saved between runs.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to revenue!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
			if err != nil {
				return err
			}
			ApplyFlags(cmd, cfg)

			Log = cfg.NewLogger()
			AppContainer, err = container.NewContainerWithLogger(cfg, Log)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close container")
			}
		},
	}

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.revenue, .revenue and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.StateFile, "state-file", "", "File the filter criteria are saved to")
	Cmd.PersistentFlags().StringVar(&SharedFlags.BaseURL, "base-url", "", "Revenue API base URL")
}

// ApplyFlags overrides configuration values with flags set on the command
// line.
func ApplyFlags(cmd *cobra.Command, cfg *config.Config) {
	if changed(cmd, "log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if changed(cmd, "log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if changed(cmd, "state-file") {
		cfg.State.File = SharedFlags.StateFile
	}
	if changed(cmd, "base-url") {
		cfg.API.BaseURL = SharedFlags.BaseURL
	}
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
