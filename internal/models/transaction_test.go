package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_UnmarshalAPIPayload(t *testing.T) {
	payload := `[
		{"amount": 500, "metadata": {"name": "John Doe", "type": "digital_product", "email": "john@example.com", "quantity": 1, "country": "Nigeria", "product_name": "Rich Dad Poor Dad"}, "payment_reference": "c3f7123f-186f-4a45-b911-76736e9c5937", "status": "successful", "type": "deposit", "date": "2022-03-03"},
		{"amount": 200.5, "metadata": {"quantity": "2"}, "status": "pending", "type": "withdrawal", "date": "2022-03-02T10:00:00Z"},
		{"amount": "1500.25", "status": "failed", "type": "withdrawal", "date": "2022-03-01"}
	]`

	var txs []Transaction
	require.NoError(t, json.Unmarshal([]byte(payload), &txs))
	require.Len(t, txs, 3)

	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Rich Dad Poor Dad", txs[0].Metadata.ProductName)
	assert.Equal(t, FlexString("1"), txs[0].Metadata.Quantity)
	assert.Equal(t, FlexString("2"), txs[1].Metadata.Quantity)
	assert.True(t, txs[2].Amount.Equal(decimal.RequireFromString("1500.25")))
	assert.Nil(t, txs[2].Metadata)
}

func TestTransaction_Time(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)

	tx := Transaction{Date: "2022-03-03"}
	got, err := tx.Time(loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2022, 3, 3, 0, 0, 0, 0, loc).Equal(got))

	_, err = Transaction{Date: "not-a-date"}.Time(loc)
	assert.Error(t, err)
}

func TestTransaction_Equal(t *testing.T) {
	base := Transaction{
		Type:     TypeDeposit,
		Amount:   decimal.RequireFromString("5000"),
		Status:   StatusSuccessful,
		Date:     "2024-06-01",
		Metadata: &TransactionMetadata{Name: "Ada"},
	}

	tests := []struct {
		name   string
		mutate func(tx *Transaction)
		want   bool
	}{
		{"identical", func(*Transaction) {}, true},
		{"amount scale differs", func(tx *Transaction) { tx.Amount = decimal.RequireFromString("5000.00") }, true},
		{"amount differs", func(tx *Transaction) { tx.Amount = decimal.NewFromInt(1) }, false},
		{"status differs", func(tx *Transaction) { tx.Status = StatusFailed }, false},
		{"metadata removed", func(tx *Transaction) { tx.Metadata = nil }, false},
		{"metadata copy", func(tx *Transaction) { tx.Metadata = &TransactionMetadata{Name: "Ada"} }, true},
		{"metadata differs", func(tx *Transaction) { tx.Metadata = &TransactionMetadata{Name: "Bob"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := CloneTransactions([]Transaction{base})[0]
			tt.mutate(&other)
			assert.Equal(t, tt.want, base.Equal(other))
		})
	}
}

func TestTransactionsEqual(t *testing.T) {
	a := Transaction{Type: TypeDeposit, Date: "2024-06-01", Amount: decimal.NewFromInt(1)}
	b := Transaction{Type: TypeWithdrawal, Date: "2024-06-02", Amount: decimal.NewFromInt(2)}

	assert.True(t, TransactionsEqual(nil, []Transaction{}))
	assert.True(t, TransactionsEqual([]Transaction{a, b}, []Transaction{a, b}))
	assert.False(t, TransactionsEqual([]Transaction{a, b}, []Transaction{b, a}))
	assert.False(t, TransactionsEqual([]Transaction{a}, []Transaction{a, b}))
}

func TestCloneTransactions(t *testing.T) {
	assert.Nil(t, CloneTransactions(nil))

	in := []Transaction{{Date: "2024-06-01", Metadata: &TransactionMetadata{Name: "Ada"}}}
	out := CloneTransactions(in)
	out[0].Date = "2024-07-01"
	out[0].Metadata.Name = "Bob"

	assert.Equal(t, "2024-06-01", in[0].Date)
	assert.Equal(t, "Ada", in[0].Metadata.Name)
}

func TestTransaction_TitleAndSubtitle(t *testing.T) {
	withMeta := Transaction{
		Type:     TypeDeposit,
		Status:   StatusSuccessful,
		Metadata: &TransactionMetadata{Name: "Roy Cash", ProductName: "Mind Tricks"},
	}
	assert.Equal(t, "Mind Tricks", withMeta.Title())
	assert.Equal(t, "Roy Cash", withMeta.Subtitle())

	bare := Transaction{Type: TypeWithdrawal, Status: StatusPending}
	assert.Equal(t, "Withdrawals", bare.Title())
	assert.Equal(t, "Pending", bare.Subtitle())
	assert.False(t, bare.IsCredit())
	assert.True(t, withMeta.IsCredit())
}

func TestWalletData_Stats(t *testing.T) {
	w := WalletData{
		Balance:       decimal.NewFromInt(750),
		TotalPayout:   decimal.NewFromInt(500),
		TotalRevenue:  decimal.NewFromInt(1200),
		PendingPayout: decimal.NewFromInt(0),
		LedgerBalance: decimal.NewFromInt(500),
	}

	stats := w.Stats()
	keys := make([]string, len(stats))
	for i, s := range stats {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{StatTotalPayout, StatTotalRevenue, StatPendingPayout, StatLedgerBalance}, keys)
	assert.True(t, stats[1].Amount.Equal(decimal.NewFromInt(1200)))
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Olivier Jones", User{FirstName: "Olivier", LastName: "Jones"}.FullName())
	assert.Equal(t, "Olivier", User{FirstName: "Olivier"}.FullName())
	assert.Equal(t, "Jones", User{LastName: "Jones"}.FullName())
	assert.Equal(t, "", User{}.FullName())
}
