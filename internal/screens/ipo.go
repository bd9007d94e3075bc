package screens

import (
	"context"

	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/market"
	"stocklink-lite/internal/trading"
)

// IPOList is the marketplace screen view-model.
type IPOList struct {
	Market  *market.Service
	Trading *trading.Service

	Companies []domain.Company
}

// Load fetches the requested page of IPO listings.
func (s *IPOList) Load(ctx context.Context, page int) error {
	companies, err := s.Market.IPOCompanies(ctx, page)
	if err != nil {
		return err
	}
	s.Companies = companies
	return nil
}

// Buy places an order for the selected company. The screen's data is left
// untouched; call Load again to see the new server state.
func (s *IPOList) Buy(ctx context.Context, companyID uint, quantity int64) error {
	return s.Trading.Buy(ctx, companyID, quantity)
}
