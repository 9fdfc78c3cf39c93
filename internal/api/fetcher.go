package api

import (
	"context"
	"fmt"

	"mainstack/revenue/internal/logging"
	"mainstack/revenue/internal/models"

	"golang.org/x/sync/errgroup"
)

// Source is the read side of the revenue API.
type Source interface {
	User(ctx context.Context) (models.User, error)
	Wallet(ctx context.Context) (models.WalletData, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
}

// Sink receives freshly fetched transactions. *filterstate.State satisfies it.
type Sink interface {
	SetTransactions(list []models.Transaction) error
}

// Dashboard is everything the revenue page shows, fetched together.
type Dashboard struct {
	User         models.User
	Wallet       models.WalletData
	Transactions []models.Transaction
}

// Fetcher delivers API data to the filter state.
type Fetcher struct {
	source Source
	sink   Sink
	logger logging.Logger
}

// NewFetcher creates a fetcher pushing from source into sink.
func NewFetcher(source Source, sink Sink, logger logging.Logger) *Fetcher {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Fetcher{source: source, sink: sink, logger: logger.WithField(logging.FieldComponent, "fetcher")}
}

// Sync fetches transactions once and hands them to the sink.
func (f *Fetcher) Sync(ctx context.Context) error {
	txs, err := f.source.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("fetching transactions: %w", err)
	}
	if err := f.sink.SetTransactions(txs); err != nil {
		return err
	}
	f.logger.Debug("Transactions synced", logging.F(logging.FieldCount, len(txs)))
	return nil
}

// Load fetches user, wallet and transactions concurrently, then hands the
// transactions to the sink. The first failure cancels the other requests.
func (f *Fetcher) Load(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := f.source.User(gctx)
		if err != nil {
			return fmt.Errorf("fetching user: %w", err)
		}
		d.User = user
		return nil
	})
	g.Go(func() error {
		wallet, err := f.source.Wallet(gctx)
		if err != nil {
			return fmt.Errorf("fetching wallet: %w", err)
		}
		d.Wallet = wallet
		return nil
	})
	g.Go(func() error {
		txs, err := f.source.Transactions(gctx)
		if err != nil {
			return fmt.Errorf("fetching transactions: %w", err)
		}
		d.Transactions = txs
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	if err := f.sink.SetTransactions(d.Transactions); err != nil {
		return Dashboard{}, err
	}

	f.logger.Info("Dashboard loaded", logging.F(logging.FieldCount, len(d.Transactions)))
	return d, nil
}
