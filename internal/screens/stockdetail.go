package screens

import (
	"context"

	"stocklink-lite/internal/account"
	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/market"
)

// StockDetail shows one company with its performance series and the user's
// owned quantity.
type StockDetail struct {
	Market  *market.Service
	Account *account.Service

	Company     domain.Company
	Performance []domain.PricePoint
	Owned       int64
}

// Load fetches the three detail sections one after another.
func (s *StockDetail) Load(ctx context.Context, companyID uint, timeframe string) error {
	company, err := s.Market.CompanyDetails(ctx, companyID)
	if err != nil {
		return err
	}
	s.Company = company

	series, err := s.Market.Performance(ctx, companyID, timeframe)
	if err != nil {
		return err
	}
	s.Performance = series

	owned, err := s.Account.StockQuantity(ctx, companyID)
	if err != nil {
		return err
	}
	s.Owned = owned
	return nil
}
