// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"

	"mainstack/revenue/internal/api"
	"mainstack/revenue/internal/container"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/render"
	"mainstack/revenue/internal/report"
	"mainstack/revenue/internal/validation"
)

// RestoreCriteria loads the saved criteria into the filter state. Saved
// criteria that no longer validate are ignored with a warning.
func RestoreCriteria(c *container.Container) error {
	saved, err := c.GetStore().Load()
	if err != nil {
		return fmt.Errorf("loading filter criteria: %w", err)
	}
	if err := validation.ValidateCriteria(saved.Criteria); err != nil {
		c.GetLogger().WithError(err).Warn("Ignoring invalid saved filter criteria")
		return nil
	}
	return c.GetState().Restore(saved)
}

// SaveCriteria writes the state's criteria to the store.
func SaveCriteria(c *container.Container) error {
	if err := c.GetStore().Save(c.GetState().Persisted()); err != nil {
		return fmt.Errorf("saving filter criteria: %w", err)
	}
	return nil
}

// LoadDashboard restores the saved criteria, then fetches user, wallet and
// transactions and feeds the transactions to the filter state.
func LoadDashboard(ctx context.Context, c *container.Container) (api.Dashboard, error) {
	if err := RestoreCriteria(c); err != nil {
		return api.Dashboard{}, err
	}
	dash, err := c.GetFetcher().Load(ctx)
	if err != nil {
		return api.Dashboard{}, fmt.Errorf("loading dashboard: %w", err)
	}
	return dash, nil
}

// Summarize builds the page summary from the dashboard data and the current
// filter state.
func Summarize(c *container.Container, dash api.Dashboard, page, size int) (*report.Summary, error) {
	snap := c.GetState().Snapshot()
	chart, err := report.ChartSeries(snap.FilteredData, c.GetLocation())
	if err != nil {
		return nil, fmt.Errorf("building chart: %w", err)
	}
	c.GetLogger().Debug("Summary built",
		logging.F(logging.FieldCount, len(snap.Transactions)),
		logging.F(logging.FieldFiltered, len(snap.FilteredData)),
		logging.F(logging.FieldFilterCount, snap.FilterCount))

	return &report.Summary{
		User:         dash.User,
		Balance:      dash.Wallet.Balance,
		Stats:        report.StatItems(dash.Wallet),
		Chart:        chart,
		Period:       snap.Criteria.Period,
		FilterCount:  snap.FilterCount,
		Transactions: report.Paginate(snap.FilteredData, page, size),
	}, nil
}

// RenderPage turns a summary into the terminal page.
func RenderPage(c *container.Container, dash api.Dashboard, s *report.Summary) render.Page {
	return render.Page{
		User:        s.User,
		Wallet:      dash.Wallet,
		Chart:       s.Chart,
		Rows:        s.Transactions,
		Period:      s.Period,
		FilterCount: s.FilterCount,
		Currency:    c.GetConfig().Display.Currency,
		Location:    c.GetLocation(),
	}
}
