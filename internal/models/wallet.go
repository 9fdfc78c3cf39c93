package models

import "github.com/shopspring/decimal"

// User is the signed-in account holder.
type User struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Email     string `json:"email" yaml:"email"`
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// WalletData holds the wallet balance and its summary figures.
type WalletData struct {
	Balance       decimal.Decimal `json:"balance" yaml:"balance"`
	TotalPayout   decimal.Decimal `json:"total_payout" yaml:"total_payout"`
	TotalRevenue  decimal.Decimal `json:"total_revenue" yaml:"total_revenue"`
	PendingPayout decimal.Decimal `json:"pending_payout" yaml:"pending_payout"`
	LedgerBalance decimal.Decimal `json:"ledger_balance" yaml:"ledger_balance"`
}

// WalletStat is one named figure of the stats panel. Key is the snake_case
// API field name.
type WalletStat struct {
	Key    string          `json:"key" yaml:"key"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// Stats returns the summary figures in panel order. The balance itself is
// shown on the balance card, not in the panel.
func (w WalletData) Stats() []WalletStat {
	return []WalletStat{
		{Key: StatTotalPayout, Amount: w.TotalPayout},
		{Key: StatTotalRevenue, Amount: w.TotalRevenue},
		{Key: StatPendingPayout, Amount: w.PendingPayout},
		{Key: StatLedgerBalance, Amount: w.LedgerBalance},
	}
}
