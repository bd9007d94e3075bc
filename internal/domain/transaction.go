package domain

import "github.com/shopspring/decimal"

// TransactionType is BUY or SELL.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// TransactionCompany is the company projection embedded in a transaction.
type TransactionCompany struct {
	Name string `json:"name"`
}

// Transaction is one entry of the append-only trade history. The client only
// ever reads these.
type Transaction struct {
	Type        TransactionType    `json:"type"`
	Quantity    int64              `json:"quantity"`
	Company     TransactionCompany `json:"company"`
	PriceAtTime decimal.Decimal    `json:"priceAtTime"`
}
