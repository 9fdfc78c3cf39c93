// Package revenue renders the revenue page, the application's default view
package revenue

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mainstack/revenue/cmd/common"
	"mainstack/revenue/cmd/root"
	"mainstack/revenue/internal/container"
	"mainstack/revenue/internal/render"
	"mainstack/revenue/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the page flags.
type Options struct {
	Page     int
	PageSize int
	Format   string
}

var opts Options

// Register makes the revenue page the root command's action.
func Register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Transaction page to show")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Transactions per page (default from config)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Run = revenueFunc
}

func revenueFunc(cmd *cobra.Command, args []string) {
	if err := Run(cmd.Context(), root.AppContainer, opts, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error showing revenue: %v", err)
	}
}

// Run fetches the dashboard and writes the page in the requested format.
func Run(ctx context.Context, c *container.Container, o Options, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	format := strings.ToLower(o.Format)
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	size := o.PageSize
	if size < 1 {
		size = c.GetConfig().Display.PageSize
	}

	dash, err := common.LoadDashboard(ctx, c)
	if err != nil {
		return err
	}
	summary, err := common.Summarize(c, dash, o.Page, size)
	if err != nil {
		return err
	}

	if format == "text" {
		_, err = fmt.Fprintln(w, render.New().Render(common.RenderPage(c, dash, summary)))
		return err
	}
	out, err := c.GetGenerator().Generate(summary, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
