package domain

import "github.com/shopspring/decimal"

// Company is an IPO listing as returned by /companies/ipo and
// /companies/details/:id. Volume is nil when the backend has no trade data
// for the listing yet.
type Company struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	Symbol             string          `json:"symbol"`
	Sector             string          `json:"sector"`
	StockAmount        int64           `json:"stockAmount"`
	MarketCap          decimal.Decimal `json:"marketCap"`
	CurrentPrice       decimal.Decimal `json:"currentPrice"`
	OpeningDate        string          `json:"openingDate"`
	ClosingDate        string          `json:"closingDate"`
	MinimumStockAmount int64           `json:"minimumStockAmount"`
	Status             string          `json:"status"`
	About              string          `json:"about"`
	Volume             *int64          `json:"volume"`
	Change             decimal.Decimal `json:"change"`
	ChangePercent      float64         `json:"changePercent"`
}

// PricePoint is one sample of a company's performance series.
type PricePoint struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}
