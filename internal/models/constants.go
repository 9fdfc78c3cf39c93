package models

// Preset periods. Period values are compared case-insensitively.
const (
	PeriodAllTime     = "all time"
	PeriodToday       = "today"
	PeriodLast7Days   = "last 7 days"
	PeriodThisMonth   = "this month"
	PeriodLast3Months = "last 3 months"
)

// Transaction type tags as sent by the API.
const (
	TypeDeposit           = "deposit"
	TypeWithdrawal        = "withdrawal"
	TypeStoreTransactions = "store_transactions"
	TypeGetTipped         = "get_tipped"
	TypeChargebacks       = "chargebacks"
	TypeCashbacks         = "cashbacks"
	TypeReferEarn         = "refer_earn"
)

// Transaction statuses.
const (
	StatusSuccessful = "successful"
	StatusPending    = "pending"
	StatusFailed     = "failed"
)

// Wallet stat keys.
const (
	StatTotalPayout   = "total_payout"
	StatTotalRevenue  = "total_revenue"
	StatPendingPayout = "pending_payout"
	StatLedgerBalance = "ledger_balance"
)

// File permissions
const (
	PermissionStateFile = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)
