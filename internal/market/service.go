// Package market reads IPO listings, company details, performance series and
// order books.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/gateway"
)

// DefaultTimeframe is used when the caller does not pick one.
const DefaultTimeframe = "1m"

type Service struct {
	Gateway *gateway.Client
}

// IPOCompanies fetches the IPO list. page <= 0 fetches the default page.
// The listing endpoints are public; no session is required to browse.
func (s *Service) IPOCompanies(ctx context.Context, page int) ([]domain.Company, error) {
	path := "/companies/ipo"
	if page > 0 {
		path = fmt.Sprintf("/companies/ipo?page=%d", page)
	}
	raw, err := s.Gateway.GetPublic(ctx, path)
	if err != nil {
		return nil, err
	}
	var body struct {
		Companies []domain.Company `json:"companies"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body.Companies, nil
}

// CompanyDetails fetches one listing.
func (s *Service) CompanyDetails(ctx context.Context, companyID uint) (domain.Company, error) {
	raw, err := s.Gateway.GetPublic(ctx, fmt.Sprintf("/companies/details/%d", companyID))
	if err != nil {
		return domain.Company{}, err
	}
	var out domain.Company
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.Company{}, err
	}
	return out, nil
}

// Performance fetches a company's price series. A zero company ID
// short-circuits to an empty series without touching the network.
func (s *Service) Performance(ctx context.Context, companyID uint, timeframe string) ([]domain.PricePoint, error) {
	if companyID == 0 {
		return nil, nil
	}
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	path := fmt.Sprintf("/stock/%d/graph?timeframe=%s", companyID, url.QueryEscape(timeframe))
	raw, err := s.Gateway.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []domain.PricePoint
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderBook fetches the outstanding orders for a company, flattened into one
// display sequence.
func (s *Service) OrderBook(ctx context.Context, companyID uint) ([]domain.OrderBookEntry, error) {
	raw, err := s.Gateway.Get(ctx, fmt.Sprintf("/tread/orderbook/%d", companyID))
	if err != nil {
		return nil, err
	}
	var book domain.OrderBook
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, err
	}
	return book.Flatten(), nil
}
