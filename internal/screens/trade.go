package screens

import (
	"context"

	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/market"
)

// Trade is the order-book screen view-model.
type Trade struct {
	Market *market.Service

	Orders []domain.OrderBookEntry
}

// Load fetches the order book for one company. Rows keep the server's order.
func (t *Trade) Load(ctx context.Context, companyID uint) error {
	orders, err := t.Market.OrderBook(ctx, companyID)
	if err != nil {
		return err
	}
	t.Orders = orders
	return nil
}
