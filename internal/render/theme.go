// Package render draws the revenue page as styled terminal text.
package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by every section of the page.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Muted      lipgloss.Style
	Bold       lipgloss.Style
	Avatar     lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	Card       lipgloss.Style
	Amount     lipgloss.Style
	Credit     lipgloss.Style
	Debit      lipgloss.Style
	Badge      lipgloss.Style
	Chart      lipgloss.Style
	EmptyState lipgloss.Style
}

// Default is the default theme.
var Default = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#131316")),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#56616B")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888F95")),
	Bold:     lipgloss.NewStyle().Bold(true),
	Avatar: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#131316")).
		Padding(0, 1),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#56616B")).
		Padding(0, 1),
	NavActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#131316")).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#EFF1F6")).
		Padding(0, 1),
	Amount: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#131316")),
	Credit: lipgloss.NewStyle().Foreground(lipgloss.Color("#0EA163")),
	Debit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#961100")),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#131316")).
		Padding(0, 1),
	Chart:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5403")),
	EmptyState: lipgloss.NewStyle().Foreground(lipgloss.Color("#56616B")).Padding(1, 2),
}
