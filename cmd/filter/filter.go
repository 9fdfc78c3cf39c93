// Package filter edits the saved transaction filter
package filter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"mainstack/revenue/cmd/common"
	"mainstack/revenue/cmd/root"
	"mainstack/revenue/internal/container"
	"mainstack/revenue/internal/filter"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/render"
	"mainstack/revenue/internal/validation"

	"github.com/spf13/cobra"
)

// ErrNoCriteria is returned by Apply when nothing would be filtered.
var ErrNoCriteria = errors.New("no filter criteria selected: choose a period, date range, type or status first")

// Cmd represents the filter command
var Cmd = &cobra.Command{
	Use:   "filter",
	Short: "Show or edit the saved transaction filter",
	Long: `Show or edit the saved transaction filter. Edits only change the
criteria; run "filter apply" to filter the transaction list with them.`,
}

func init() {
	Cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the saved filter",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(Show(root.AppContainer, cmd.OutOrStdout()))
			},
		},
		&cobra.Command{
			Use:   "period <period>",
			Short: "Choose a preset period: today, last 7 days, this month, last 3 months or all time",
			Args:  cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(SetPeriod(root.AppContainer, strings.Join(args, " ")))
			},
		},
		&cobra.Command{
			Use:   "range <start> <end>",
			Short: "Choose a custom date range (YYYY-MM-DD, inclusive)",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(SetRange(root.AppContainer, args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "toggle <types|statuses> <label>",
			Short: "Select or deselect a transaction type or status",
			Args:  cobra.MinimumNArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(Toggle(root.AppContainer, args[0], strings.Join(args[1:], " ")))
			},
		},
		&cobra.Command{
			Use:   "apply",
			Short: "Filter the transaction list with the saved criteria",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(Apply(root.AppContainer))
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the filter and show every transaction",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(Clear(root.AppContainer))
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Discard edited criteria without changing the applied filter",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fatalOnError(Reset(root.AppContainer))
			},
		},
	)
}

func fatalOnError(err error) {
	if err != nil {
		root.Log.Fatalf("Error updating filter: %v", err)
	}
}

// Show prints the saved criteria.
func Show(c *container.Container, w io.Writer) error {
	if err := common.RestoreCriteria(c); err != nil {
		return err
	}
	state := c.GetState()
	crit := state.Criteria()

	dateRange := "none"
	if crit.HasCustomRange() {
		dateRange = crit.StartDate + " to " + crit.EndDate
	}
	applied := "no"
	if state.HasAppliedFilter() {
		applied = "yes"
	}

	_, err := fmt.Fprintf(w, "Period:     %s\nDate range: %s\nTypes:      %s\nStatuses:   %s\nApplied:    %s\nBadge:      %s\n",
		models.PeriodLabel(crit.Period),
		dateRange,
		listOrAny(crit.Types),
		listOrAny(crit.Statuses),
		applied,
		render.FilterLabel(crit.ActiveCategories()),
	)
	return err
}

func listOrAny(items []string) string {
	if len(items) == 0 {
		return "any"
	}
	return strings.Join(items, ", ")
}

// SetPeriod saves a preset period.
func SetPeriod(c *container.Container, period string) error {
	if err := validation.IsValidPeriod(period); err != nil {
		return err
	}
	return edit(c, func() error {
		c.GetState().SetTransactionPeriod(models.NormalizePeriod(period))
		return nil
	}, logging.F(logging.FieldPeriod, period))
}

// SetRange saves a custom date range.
func SetRange(c *container.Container, start, end string) error {
	if err := validation.ValidateCriteria(filter.Criteria{StartDate: start, EndDate: end}); err != nil {
		return err
	}
	return edit(c, func() error {
		c.GetState().SetStartDate(start)
		c.GetState().SetEndDate(end)
		return nil
	}, logging.F(logging.FieldStartDate, start), logging.F(logging.FieldEndDate, end))
}

// Toggle selects or deselects a label in the types or statuses category.
func Toggle(c *container.Container, category, label string) error {
	cat, err := validation.IsValidCategory(category)
	if err != nil {
		return err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("a %s label is required", cat)
	}
	return edit(c, func() error {
		return c.GetState().ToggleSelection(label, cat)
	}, logging.F(logging.FieldCategory, string(cat)), logging.F(logging.FieldLabel, label))
}

// Apply marks the saved criteria as applied. It refuses when no criteria are
// active.
func Apply(c *container.Container) error {
	return edit(c, func() error {
		state := c.GetState()
		crit := state.Criteria()
		if crit.IsZero() {
			return ErrNoCriteria
		}
		if err := validation.ValidateCriteria(crit); err != nil {
			return err
		}
		return state.ApplyFilter()
	})
}

// Clear removes the filter.
func Clear(c *container.Container) error {
	return edit(c, func() error {
		c.GetState().ClearFilter()
		return nil
	})
}

// Reset discards edited criteria.
func Reset(c *container.Container) error {
	return edit(c, func() error {
		c.GetState().ResetFilterCriteria()
		return nil
	})
}

// edit restores the saved criteria, runs change and saves the result.
func edit(c *container.Container, change func() error, fields ...logging.Field) error {
	if err := common.RestoreCriteria(c); err != nil {
		return err
	}
	if err := change(); err != nil {
		return err
	}
	if err := common.SaveCriteria(c); err != nil {
		return err
	}
	c.GetLogger().Info("Filter saved", fields...)
	return nil
}
