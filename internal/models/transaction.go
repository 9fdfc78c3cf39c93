package models

import (
	"bytes"
	"encoding/json"
	"time"

	"mainstack/revenue/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Transaction is a single wallet transaction as returned by the revenue API.
type Transaction struct {
	MetadataID       string               `json:"metadata_id,omitempty" yaml:"metadata_id,omitempty"`
	Type             string               `json:"type" yaml:"type"`
	Amount           decimal.Decimal      `json:"amount" yaml:"amount"`
	Status           string               `json:"status" yaml:"status"`
	Date             string               `json:"date" yaml:"date"` // ISO-8601 date or date-time
	Metadata         *TransactionMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	PaymentReference string               `json:"payment_reference,omitempty" yaml:"payment_reference,omitempty"`
}

// TransactionMetadata carries descriptive fields. None of them take part in
// filtering.
type TransactionMetadata struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string     `json:"type,omitempty" yaml:"type,omitempty"`
	Email       string     `json:"email,omitempty" yaml:"email,omitempty"`
	Quantity    FlexString `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Country     string     `json:"country,omitempty" yaml:"country,omitempty"`
	ProductName string     `json:"product_name,omitempty" yaml:"product_name,omitempty"`
}

// FlexString accepts either a JSON string or a JSON number. The API is not
// consistent about quoting metadata quantities.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Time parses the transaction date. Bare dates and offset-less date-times are
// read in loc.
func (t Transaction) Time(loc *time.Location) (time.Time, error) {
	return dateutils.ParseTimestamp(t.Date, loc)
}

// Equal reports whether t and other carry the same data. Amounts compare by
// value, so 5000 and 5000.00 are equal.
func (t Transaction) Equal(other Transaction) bool {
	if t.MetadataID != other.MetadataID ||
		t.Type != other.Type ||
		t.Status != other.Status ||
		t.Date != other.Date ||
		t.PaymentReference != other.PaymentReference ||
		!t.Amount.Equal(other.Amount) {
		return false
	}
	switch {
	case t.Metadata == nil && other.Metadata == nil:
		return true
	case t.Metadata == nil || other.Metadata == nil:
		return false
	default:
		return *t.Metadata == *other.Metadata
	}
}

// TransactionsEqual is element-wise Equal over two lists, order-sensitive.
func TransactionsEqual(a, b []Transaction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// CloneTransactions returns a copy of the list that shares no slice backing
// array or metadata pointers with the input. nil stays nil.
func CloneTransactions(in []Transaction) []Transaction {
	if in == nil {
		return nil
	}
	out := make([]Transaction, len(in))
	for i, tx := range in {
		if tx.Metadata != nil {
			md := *tx.Metadata
			tx.Metadata = &md
		}
		out[i] = tx
	}
	return out
}

// Title is the primary display line: the product name when known, otherwise
// the type label.
func (t Transaction) Title() string {
	if t.Metadata != nil && t.Metadata.ProductName != "" {
		return t.Metadata.ProductName
	}
	return TypeLabel(t.Type)
}

// Subtitle is the secondary display line: the counterparty name when known,
// otherwise the status label.
func (t Transaction) Subtitle() string {
	if t.Metadata != nil && t.Metadata.Name != "" {
		return t.Metadata.Name
	}
	return StatusLabel(t.Status)
}

// IsCredit reports whether money flowed into the wallet.
func (t Transaction) IsCredit() bool {
	return t.Type != TypeWithdrawal
}
