// Package tui is the interactive revenue dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mainstack/revenue/internal/currencyutils"
	"mainstack/revenue/internal/dateutils"
	"mainstack/revenue/internal/filter"
	"mainstack/revenue/internal/filterstate"
	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/render"
	"mainstack/revenue/internal/report"
	"mainstack/revenue/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const allTime = models.PeriodAllTime

func periodOptions() []string {
	out := make([]string, len(models.PeriodOptions))
	for i, o := range models.PeriodOptions {
		out[i] = o.Value
	}
	return out
}

// Options configures the dashboard model.
type Options struct {
	State    *filterstate.State
	Store    store.Store
	User     models.User
	Wallet   models.WalletData
	Currency string
	Location *time.Location
	PageSize int
	// Refresh reloads transactions into State. Nil disables the refresh key.
	Refresh func(ctx context.Context) error
	Logger  logging.Logger
}

// stateChangedMsg is sent when the filter state changes outside Update.
type stateChangedMsg struct {
	revision uint64
}

// refreshDoneMsg carries the result of a refresh.
type refreshDoneMsg struct {
	err error
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	opts     Options
	keys     KeyMap
	renderer *render.Renderer
	table    table.Model
	logger   logging.Logger

	page         int
	typeCursor   int
	statusCursor int
	message      string
	width        int
	quitting     bool
}

// New creates the dashboard model.
func New(opts Options) Model {
	if opts.State == nil {
		opts.State = filterstate.New(nil, opts.Logger)
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.PageSize < 1 {
		opts.PageSize = report.DefaultPageSize
	}
	if opts.Currency == "" {
		opts.Currency = currencyutils.DefaultCurrency
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Title", Width: 28},
			{Title: "Customer / Status", Width: 22},
			{Title: "Amount", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(opts.PageSize),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)

	m := Model{
		opts:     opts,
		keys:     DefaultKeyMap(),
		renderer: render.New(),
		table:    t,
		logger:   logger.WithField(logging.FieldComponent, "tui"),
		page:     1,
		width:    80,
	}
	m.syncRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case stateChangedMsg:
		m.syncRows()
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			m.message = "Refresh failed: " + msg.err.Error()
		} else {
			m.message = "Transactions refreshed"
		}
		m.syncRows()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.opts.State
	m.message = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Period):
		if p, ok := periodForKey(msg.String()); ok {
			state.SetTransactionPeriod(p)
			m.save()
		}

	case key.Matches(msg, m.keys.ToggleType):
		opt := models.TypeOptions[m.typeCursor]
		if err := state.ToggleSelection(opt.Label, filter.CategoryTypes); err == nil {
			m.save()
		}

	case key.Matches(msg, m.keys.NextType):
		m.typeCursor = (m.typeCursor + 1) % len(models.TypeOptions)

	case key.Matches(msg, m.keys.ToggleStatus):
		opt := models.StatusOptions[m.statusCursor]
		if err := state.ToggleSelection(opt.Label, filter.CategoryStatuses); err == nil {
			m.save()
		}

	case key.Matches(msg, m.keys.NextStatus):
		m.statusCursor = (m.statusCursor + 1) % len(models.StatusOptions)

	case key.Matches(msg, m.keys.Apply):
		if state.Criteria().IsZero() {
			m.message = "Select a period, type or status before applying"
			return m, nil
		}
		if err := state.ApplyFilter(); err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.page = 1
		m.save()
		m.syncRows()

	case key.Matches(msg, m.keys.Clear):
		state.ClearFilter()
		m.page = 1
		m.save()
		m.syncRows()

	case key.Matches(msg, m.keys.NextPage):
		if m.currentPage().HasNext() {
			m.page++
			m.syncRows()
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.currentPage().HasPrev() {
			m.page--
			m.syncRows()
		}

	case key.Matches(msg, m.keys.Refresh):
		if m.opts.Refresh != nil {
			m.message = "Refreshing…"
			return m, m.refresh()
		}

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) refresh() tea.Cmd {
	fn := m.opts.Refresh
	return func() tea.Msg {
		return refreshDoneMsg{err: fn(context.Background())}
	}
}

// save persists the criteria. Failures are logged and shown, never fatal.
func (m *Model) save() {
	if m.opts.Store == nil {
		return
	}
	if err := m.opts.Store.Save(m.opts.State.Persisted()); err != nil {
		m.logger.WithError(err).Warn("Failed to save filter criteria")
		m.message = "Could not save filter: " + err.Error()
	}
}

func (m Model) currentPage() report.Page[models.Transaction] {
	return report.Paginate(m.opts.State.FilteredData(), m.page, m.opts.PageSize)
}

// syncRows rebuilds the table from the current page of filtered data.
func (m *Model) syncRows() {
	page := m.currentPage()
	if page.Pages > 0 && m.page > page.Pages {
		m.page = page.Pages
		page = m.currentPage()
	}
	rows := make([]table.Row, 0, len(page.Items))
	for _, tx := range page.Items {
		date := tx.Date
		if t, err := tx.Time(m.opts.Location); err == nil {
			date = dateutils.FormatDisplay(t)
		}
		rows = append(rows, table.Row{
			date,
			tx.Title(),
			tx.Subtitle(),
			currencyutils.FormatCurrency(tx.Amount, m.opts.Currency),
		})
	}
	m.table.SetRows(rows)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	r := m.renderer
	snap := m.opts.State.Snapshot()
	page := m.currentPage()

	sections := []string{
		r.Header(m.opts.User),
		lipgloss.JoinHorizontal(lipgloss.Top,
			r.BalanceCard(m.opts.Wallet, m.opts.Currency),
			" ",
			r.StatsPanel(m.opts.Wallet, m.opts.Currency),
		),
	}
	if points, err := report.ChartSeries(snap.FilteredData, m.opts.Location); err == nil {
		sections = append(sections, r.ChartSummary(points, m.opts.Currency))
	}
	sections = append(sections,
		"",
		r.TransactionHeader(page.Total, snap.Criteria.Period, snap.FilterCount),
		m.drawer(snap.Criteria),
		"",
	)
	if page.Total == 0 {
		sections = append(sections, r.EmptyState())
	} else {
		sections = append(sections, m.table.View(), r.Pager(page))
	}
	if m.message != "" {
		sections = append(sections, r.Theme.Subtitle.Render(m.message))
	}
	sections = append(sections, r.Theme.Muted.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// drawer shows the criteria being edited with the selection cursors.
func (m Model) drawer(c filter.Criteria) string {
	periods := make([]string, 0, len(models.PeriodOptions)+1)
	for i, p := range append(periodOptions(), allTime) {
		label := fmt.Sprintf("%d %s", i+1, models.PeriodLabel(p))
		if strings.EqualFold(models.NormalizePeriod(c.Period), p) {
			label = "[" + label + "]"
		}
		periods = append(periods, label)
	}
	lines := []string{
		"Date range: " + strings.Join(periods, "  "),
		"Type:   " + selectionLine(models.TypeOptions, c.Types, m.typeCursor),
		"Status: " + selectionLine(models.StatusOptions, c.Statuses, m.statusCursor),
	}
	if c.HasCustomRange() {
		lines = append(lines, "Custom: "+c.StartDate+" to "+c.EndDate)
	}
	return strings.Join(lines, "\n")
}

func selectionLine(opts []models.Option, selected []string, cursor int) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		mark := "[ ]"
		for _, s := range selected {
			if strings.EqualFold(s, o.Label) {
				mark = "[x]"
				break
			}
		}
		item := mark + " " + o.Label
		if i == cursor {
			item = ">" + item
		}
		parts[i] = item
	}
	return strings.Join(parts, "  ")
}

func (m Model) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.Enabled() {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return strings.Join(parts, " • ")
}
