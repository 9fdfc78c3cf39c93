package models

import "strings"

// Option pairs a display label with the tag the API uses for it.
type Option struct {
	Label string
	Value string
}

// TypeOptions lists the transaction types offered in the filter drawer.
var TypeOptions = []Option{
	{Label: "Store Transactions", Value: TypeStoreTransactions},
	{Label: "Get Tipped", Value: TypeGetTipped},
	{Label: "Withdrawals", Value: TypeWithdrawal},
	{Label: "Chargebacks", Value: TypeChargebacks},
	{Label: "Cashbacks", Value: TypeCashbacks},
	{Label: "Refer & Earn", Value: TypeReferEarn},
}

// StatusOptions lists the transaction statuses offered in the filter drawer.
var StatusOptions = []Option{
	{Label: "Successful", Value: StatusSuccessful},
	{Label: "Pending", Value: StatusPending},
	{Label: "Failed", Value: StatusFailed},
}

// PeriodOptions lists the preset periods in drawer order. "All time" is the
// default and is reached by clearing the filter.
var PeriodOptions = []Option{
	{Label: "Today", Value: PeriodToday},
	{Label: "Last 7 days", Value: PeriodLast7Days},
	{Label: "This month", Value: PeriodThisMonth},
	{Label: "Last 3 months", Value: PeriodLast3Months},
}

var (
	typeByLabel = indexByLabel(TypeOptions)
	labelByType = indexByValue(TypeOptions)
)

func indexByLabel(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[strings.ToLower(o.Label)] = o.Value
	}
	return m
}

func indexByValue(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[o.Value] = o.Label
	}
	return m
}

// NormalizeTypeLabel maps a type label to the API tag. Known labels resolve
// through TypeOptions regardless of case. Anything else replaces the first
// space with an underscore and lowercases, so raw tags pass through unchanged.
func NormalizeTypeLabel(label string) string {
	if v, ok := typeByLabel[strings.ToLower(strings.TrimSpace(label))]; ok {
		return v
	}
	return strings.ToLower(strings.Replace(label, " ", "_", 1))
}

// NormalizeStatusLabel lowercases a status label.
func NormalizeStatusLabel(label string) string {
	return strings.ToLower(label)
}

// NormalizePeriod lowercases and trims a period value for comparison.
func NormalizePeriod(period string) string {
	return strings.ToLower(strings.TrimSpace(period))
}

// TypeLabel is the reverse of NormalizeTypeLabel for display. Unknown tags
// are title-cased word by word ("deposit" -> "Deposit").
func TypeLabel(tag string) string {
	if l, ok := labelByType[tag]; ok {
		return l
	}
	return titleWords(tag)
}

// StatusLabel returns the display label for a status tag.
func StatusLabel(status string) string {
	return titleWords(strings.ToLower(status))
}

// PeriodLabel returns the display label for a period value.
func PeriodLabel(period string) string {
	p := NormalizePeriod(period)
	if p == PeriodAllTime {
		return "All time"
	}
	for _, o := range PeriodOptions {
		if o.Value == p {
			return o.Label
		}
	}
	return period
}

func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
