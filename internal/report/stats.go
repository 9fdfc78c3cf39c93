// Package report derives the figures shown around the transaction list:
// wallet stats, the chart series, pagination and the exportable summary.
package report

import (
	"mainstack/revenue/internal/models"
	"mainstack/revenue/internal/textutils"

	"github.com/shopspring/decimal"
)

// StatItem is one labelled figure of the wallet stats panel.
type StatItem struct {
	Key    string          `json:"key" yaml:"key"`
	Label  string          `json:"label" yaml:"label"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// StatItems labels the wallet stats in panel order.
func StatItems(w models.WalletData) []StatItem {
	stats := w.Stats()
	items := make([]StatItem, len(stats))
	for i, s := range stats {
		items[i] = StatItem{Key: s.Key, Label: textutils.PascalCase(s.Key), Amount: s.Amount}
	}
	return items
}
