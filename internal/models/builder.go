package models

import (
	"errors"
	"fmt"
	"time"

	"mainstack/revenue/internal/dateutils"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a builder for a successful zero-amount deposit.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Type:   TypeDeposit,
			Status: StatusSuccessful,
			Amount: decimal.Zero,
		},
	}
}

// WithReference sets the payment reference
func (b *TransactionBuilder) WithReference(ref string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.PaymentReference = ref
	return b
}

// WithMetadataID sets the metadata id
func (b *TransactionBuilder) WithMetadataID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.MetadataID = id
	return b
}

// WithType sets the type tag
func (b *TransactionBuilder) WithType(typ string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if typ == "" {
		b.err = errors.New("type cannot be empty")
		return b
	}
	b.tx.Type = typ
	return b
}

// WithStatus sets the status tag
func (b *TransactionBuilder) WithStatus(status string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Status = status
	return b
}

// WithAmount sets the amount from a decimal
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithAmountFromString parses the amount
func (b *TransactionBuilder) WithAmountFromString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		b.err = fmt.Errorf("invalid amount %q: %w", amount, err)
		return b
	}
	b.tx.Amount = d
	return b
}

// WithDate sets the raw date string. Accepted forms are those understood by
// dateutils.ParseTimestamp.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date == "" {
		b.err = errors.New("date cannot be empty")
		return b
	}
	if _, err := dateutils.ParseTimestamp(date, time.UTC); err != nil {
		b.err = err
		return b
	}
	b.tx.Date = date
	return b
}

// WithDateFromTime stores t as RFC 3339
func (b *TransactionBuilder) WithDateFromTime(t time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if t.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = t.Format(time.RFC3339)
	return b
}

// WithCustomer sets the counterparty name and email
func (b *TransactionBuilder) WithCustomer(name, email string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.metadata().Name = name
	b.metadata().Email = email
	return b
}

// WithProduct sets the product name and quantity
func (b *TransactionBuilder) WithProduct(name string, quantity int) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.metadata().ProductName = name
	b.metadata().Quantity = FlexString(fmt.Sprint(quantity))
	return b
}

func (b *TransactionBuilder) metadata() *TransactionMetadata {
	if b.tx.Metadata == nil {
		b.tx.Metadata = &TransactionMetadata{}
	}
	return b.tx.Metadata
}

// Build returns the transaction or the first error recorded by a With call.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if b.tx.Date == "" {
		return Transaction{}, errors.New("date is required")
	}
	out := CloneTransactions([]Transaction{b.tx})
	return out[0], nil
}

// MustBuild is Build for fixtures; it panics on error.
func (b *TransactionBuilder) MustBuild() Transaction {
	tx, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tx
}

// Reset restores the builder defaults
func (b *TransactionBuilder) Reset() *TransactionBuilder {
	*b = *NewTransactionBuilder()
	return b
}
