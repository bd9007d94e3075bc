package domain

import "github.com/shopspring/decimal"

// OrderBookOrder is one queued order inside a price level.
type OrderBookOrder struct {
	ID        string `json:"id"`
	Quantity  int64  `json:"quantity"`
	CreatedAt string `json:"createdAt"`
}

// OrderBookLevel is one price level with its queued orders.
type OrderBookLevel struct {
	Price  decimal.Decimal  `json:"price"`
	Orders []OrderBookOrder `json:"orders"`
}

// OrderBook is the wire shape of GET /tread/orderbook/:companyId.
type OrderBook struct {
	Bids []OrderBookLevel `json:"bids"`
	Asks []OrderBookLevel `json:"asks"`
}

// OrderSide marks a flattened row as a bid or an ask.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "Buy"
	OrderSideSell OrderSide = "Sell"
)

// OrderBookEntry is one flattened row for display.
type OrderBookEntry struct {
	Type      OrderSide
	ID        string
	Price     decimal.Decimal
	Shares    int64
	CreatedAt string
}

// Flatten merges bids then asks into one sequence. Rows keep the order the
// server returned them in; no client-side sort.
func (b OrderBook) Flatten() []OrderBookEntry {
	out := make([]OrderBookEntry, 0)
	for _, level := range b.Bids {
		for _, o := range level.Orders {
			out = append(out, OrderBookEntry{
				Type:      OrderSideBuy,
				ID:        o.ID,
				Price:     level.Price,
				Shares:    o.Quantity,
				CreatedAt: o.CreatedAt,
			})
		}
	}
	for _, level := range b.Asks {
		for _, o := range level.Orders {
			out = append(out, OrderBookEntry{
				Type:      OrderSideSell,
				ID:        o.ID,
				Price:     level.Price,
				Shares:    o.Quantity,
				CreatedAt: o.CreatedAt,
			})
		}
	}
	return out
}
