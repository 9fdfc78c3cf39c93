package render

import (
	"strconv"
	"strings"
	"time"

	"mainstack/revenue/internal/currencyutils"
	"mainstack/revenue/internal/dateutils"
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/report"
	"mainstack/revenue/internal/textutils"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// NavItems are the header navigation entries. Revenue is the active page.
var NavItems = []string{"Home", "Analytics", "Revenue", "Apps"}

// ActiveNav is the page this application renders.
const ActiveNav = "Revenue"

// EmptyTitle and EmptyHint are shown when no transaction matches.
const (
	EmptyTitle = "No matching transaction found for the selected filter"
	EmptyHint  = "Change your filters to see more results, or run `revenue filter clear`."
)

const sparkLevels = "▁▂▃▄▅▆▇█"

// Page is everything needed to draw the revenue page.
type Page struct {
	User        models.User
	Wallet      models.WalletData
	Chart       []report.ChartPoint
	Rows        report.Page[models.Transaction]
	Period      string
	FilterCount int
	Currency    string
	Location    *time.Location
}

// Renderer draws pages with a theme.
type Renderer struct {
	Theme Theme
}

// New returns a renderer using the default theme.
func New() *Renderer {
	return &Renderer{Theme: Default}
}

// Render draws the whole page, top to bottom.
func (r *Renderer) Render(p Page) string {
	sections := []string{
		r.Header(p.User),
		lipgloss.JoinHorizontal(lipgloss.Top,
			r.BalanceCard(p.Wallet, p.Currency),
			" ",
			r.StatsPanel(p.Wallet, p.Currency),
		),
		r.ChartSummary(p.Chart, p.Currency),
		r.TransactionHeader(p.Rows.Total, p.Period, p.FilterCount),
	}
	if p.Rows.Total == 0 {
		sections = append(sections, r.EmptyState())
	} else {
		sections = append(sections, r.TransactionRows(p.Rows.Items, p.Location, p.Currency), r.Pager(p.Rows))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Header draws the user avatar next to the navigation bar.
func (r *Renderer) Header(user models.User) string {
	initials := textutils.Initials(user.FullName())
	if initials == "" {
		initials = "?"
	}
	items := make([]string, 0, len(NavItems)+2)
	items = append(items, r.Theme.Avatar.Render(initials), " ")
	for _, item := range NavItems {
		style := r.Theme.NavItem
		if item == ActiveNav {
			style = r.Theme.NavActive
		}
		items = append(items, style.Render(item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, items...) + "\n"
}

// BalanceCard shows the available balance.
func (r *Renderer) BalanceCard(w models.WalletData, currency string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		r.Theme.Subtitle.Render("Available Balance"),
		r.Theme.Amount.Render(currencyutils.FormatCurrency(w.Balance, currencyOr(currency))),
	)
	return r.Theme.Card.Render(body)
}

// StatsPanel lists the wallet figures in panel order.
func (r *Renderer) StatsPanel(w models.WalletData, currency string) string {
	items := report.StatItems(w)
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, r.Theme.Subtitle.Render(item.Label)+"  "+
			r.Theme.Amount.Render(currencyutils.FormatCurrency(item.Amount, currencyOr(currency))))
	}
	return r.Theme.Card.Render(strings.Join(lines, "\n"))
}

// ChartSummary draws a sparkline of the chart series with its first and last
// date ticks.
func (r *Renderer) ChartSummary(points []report.ChartPoint, currency string) string {
	if len(points) == 0 {
		return r.Theme.Muted.Render("No revenue to chart yet")
	}
	amounts := make([]decimal.Decimal, len(points))
	for i, p := range points {
		amounts[i] = p.Amount
	}
	ticks := report.Ticks(points)
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = t.FormattedDate
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		r.Theme.Chart.Render(Sparkline(amounts)),
		r.Theme.Muted.Render(strings.Join(labels, "  …  ")),
		r.Theme.Muted.Render(strconv.Itoa(len(points))+" "+textutils.Pluralize(len(points), "point", "points")+", total "+
			currencyutils.FormatCurrency(currencyutils.Sum(amounts...), currencyOr(currency))),
	)
}

// TransactionHeader shows the result count, the period line and the filter
// badge.
func (r *Renderer) TransactionHeader(total int, period string, filterCount int) string {
	heading := r.Theme.Title.Render(report.CountText(total)) + "  " + r.FilterBadge(filterCount)
	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		r.Theme.Subtitle.Render(report.PeriodText(period)),
	)
}

// FilterBadge reads "Filter (n)" when n filter categories are active and
// plain "Filter" otherwise.
func (r *Renderer) FilterBadge(n int) string {
	return r.Theme.Badge.Render(FilterLabel(n))
}

// FilterLabel is the unstyled badge text.
func FilterLabel(n int) string {
	if n > 0 {
		return "Filter (" + strconv.Itoa(n) + ")"
	}
	return "Filter"
}

// TransactionRows draws one line per transaction: title, subtitle, amount
// and date.
func (r *Renderer) TransactionRows(txs []models.Transaction, loc *time.Location, currency string) string {
	if loc == nil {
		loc = time.Local
	}
	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		subtitle := r.subtitleStyle(tx).Render(textutils.Truncate(tx.Subtitle(), 28))
		date := tx.Date
		if t, err := tx.Time(loc); err == nil {
			date = dateutils.FormatDisplay(t)
		}
		left := lipgloss.JoinVertical(lipgloss.Left,
			r.Theme.Bold.Render(textutils.Truncate(tx.Title(), 32)),
			subtitle,
		)
		right := lipgloss.JoinVertical(lipgloss.Right,
			r.Theme.Amount.Render(currencyutils.FormatCurrency(tx.Amount, currencyOr(currency))),
			r.Theme.Muted.Render(date),
		)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(36).Render(left),
			right,
		))
	}
	return strings.Join(lines, "\n")
}

// Pager shows the page position when the list spans several pages.
func (r *Renderer) Pager(p report.Page[models.Transaction]) string {
	if p.Pages <= 1 {
		return ""
	}
	prev, next := " ", " "
	if p.HasPrev() {
		prev = "‹"
	}
	if p.HasNext() {
		next = "›"
	}
	return r.Theme.Muted.Render(prev + " Page " + strconv.Itoa(p.Number) + " of " + strconv.Itoa(p.Pages) + " " + next)
}

// EmptyState is shown instead of rows when nothing matches.
func (r *Renderer) EmptyState() string {
	return r.Theme.EmptyState.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.Theme.Bold.Render(EmptyTitle),
		EmptyHint,
	))
}

// Sparkline maps amounts onto eight block heights between the smallest and
// largest value.
func Sparkline(amounts []decimal.Decimal) string {
	if len(amounts) == 0 {
		return ""
	}
	levels := []rune(sparkLevels)
	lo, hi := amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		lo = decimal.Min(lo, a)
		hi = decimal.Max(hi, a)
	}
	span := hi.Sub(lo)
	top := decimal.NewFromInt(int64(len(levels) - 1))

	var b strings.Builder
	for _, a := range amounts {
		idx := len(levels) / 2
		if !span.IsZero() {
			idx = int(a.Sub(lo).Div(span).Mul(top).Round(0).IntPart())
		}
		b.WriteRune(levels[idx])
	}
	return b.String()
}

// subtitleStyle colours withdrawals by status. Credits show the customer in
// the plain subtitle style.
func (r *Renderer) subtitleStyle(tx models.Transaction) lipgloss.Style {
	if tx.IsCredit() {
		return r.Theme.Subtitle
	}
	switch strings.ToLower(tx.Status) {
	case models.StatusSuccessful:
		return r.Theme.Credit
	case models.StatusFailed:
		return r.Theme.Debit
	default:
		return r.Theme.Muted
	}
}

func currencyOr(code string) string {
	if code == "" {
		return currencyutils.DefaultCurrency
	}
	return code
}
