// Package screens holds the per-screen view-models: transient state derived
// from the domain services plus the user-driven mutations each screen can
// trigger. Rendering is the caller's job; these only produce data. Every load
// takes a context so a screen left mid-fetch cancels its in-flight requests.
package screens

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"stocklink-lite/internal/account"
	"stocklink-lite/internal/auth"
	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/market"
)

// Portfolio is the dashboard view-model: balance, holdings, recent
// transactions, the derived watchlist and the top holding's performance
// series.
type Portfolio struct {
	Account *account.Service
	Market  *market.Service
	Auth    *auth.Service

	Balance      decimal.Decimal
	Holdings     []domain.Holding
	Transactions []domain.Transaction
	Watchlist    []domain.Company
	Performance  []domain.PricePoint
}

// Load fires the four dashboard fetches as one batch and waits for all of
// them. On failure the batch reports a single error and members that did not
// complete stay at their zero values; there is no partial retry or rollback.
// The top holding's performance series loads after the batch since it depends
// on the holdings result.
func (p *Portfolio) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b, err := p.Account.Balance(gctx)
		if err != nil {
			return err
		}
		p.Balance = b
		return nil
	})
	g.Go(func() error {
		holdings, err := p.Account.Holdings(gctx)
		if err != nil {
			return err
		}
		p.Holdings = holdings
		return nil
	})
	g.Go(func() error {
		txs, err := p.Account.TransactionHistory(gctx)
		if err != nil {
			return err
		}
		p.Transactions = txs
		return nil
	})
	g.Go(func() error {
		companies, err := p.Market.IPOCompanies(gctx, 1)
		if err != nil {
			return err
		}
		p.Watchlist = market.Watchlist(companies, market.WatchlistSize)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if len(p.Holdings) > 0 {
		series, err := p.Market.Performance(ctx, p.Holdings[0].Company.ID, market.DefaultTimeframe)
		if err != nil {
			// The chart is the one dashboard element allowed to stay empty
			// without failing the whole screen.
			p.Performance = nil
			return nil
		}
		p.Performance = series
	}
	return nil
}

// Refresh re-fetches everything. Mutations never adjust this screen's state
// locally, so callers invoke Refresh after a confirmed buy or deposit.
func (p *Portfolio) Refresh(ctx context.Context) error {
	return p.Load(ctx)
}

// Logout ends the session. The caller routes to the login screen regardless
// of the returned error.
func (p *Portfolio) Logout(ctx context.Context) error {
	return p.Auth.Logout(ctx)
}
