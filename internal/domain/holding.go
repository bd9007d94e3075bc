package domain

import "github.com/shopspring/decimal"

// HeldCompany is the company projection embedded in a holding.
type HeldCompany struct {
	ID            uint            `json:"id"`
	Symbol        string          `json:"symbol"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent float64         `json:"changePercent"`
}

// Holding is a read-only projection of server state. It is never adjusted
// locally after a buy; the screen re-fetches to see the new quantity.
type Holding struct {
	Company  HeldCompany `json:"company"`
	Quantity int64       `json:"quantity"`
}
