// Package tui starts the interactive dashboard
package tui

import (
	"context"

	"mainstack/revenue/cmd/common"
	"mainstack/revenue/cmd/root"
	"mainstack/revenue/internal/api"
	"mainstack/revenue/internal/container"
	dashboard "mainstack/revenue/internal/tui"

	"github.com/spf13/cobra"
)

// Cmd represents the tui command
var Cmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and filter transactions interactively",
	Args:  cobra.NoArgs,
	Run:   tuiFunc,
}

func tuiFunc(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := Options(ctx, root.AppContainer)
	if err != nil {
		root.Log.Fatalf("Error loading dashboard: %v", err)
	}
	if err := dashboard.Run(ctx, opts); err != nil {
		root.Log.Fatalf("Error running dashboard: %v", err)
	}
}

// Options loads the dashboard and builds the interactive model options.
// Refreshing drops the cached transactions and syncs them again.
func Options(ctx context.Context, c *container.Container) (dashboard.Options, error) {
	dash, err := common.LoadDashboard(ctx, c)
	if err != nil {
		return dashboard.Options{}, err
	}
	cfg := c.GetConfig()
	return dashboard.Options{
		State:    c.GetState(),
		Store:    c.GetStore(),
		User:     dash.User,
		Wallet:   dash.Wallet,
		Currency: cfg.Display.Currency,
		Location: c.GetLocation(),
		PageSize: cfg.Display.PageSize,
		Refresh: func(ctx context.Context) error {
			c.GetClient().Invalidate(api.EndpointTransactions)
			return c.GetFetcher().Sync(ctx)
		},
		Logger: c.GetLogger(),
	}, nil
}
