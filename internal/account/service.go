// Package account reads the authenticated user's balance, holdings and
// transaction history. Every call re-fetches from the network; nothing here
// caches or mutates local state.
package account

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/gateway"
)

type Service struct {
	Gateway *gateway.Client
}

// Balance fetches the current cash balance. The only way the local balance
// ever changes is a full replace from here.
func (s *Service) Balance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := s.Gateway.Get(ctx, "/user/balance")
	if err != nil {
		return decimal.Decimal{}, err
	}
	var body struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return decimal.Decimal{}, err
	}
	return body.Balance, nil
}

// Holdings fetches the user's stock positions.
func (s *Service) Holdings(ctx context.Context) ([]domain.Holding, error) {
	raw, err := s.Gateway.Get(ctx, "/user/stocks")
	if err != nil {
		return nil, err
	}
	var body struct {
		Stocks []domain.Holding `json:"stocks"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body.Stocks, nil
}

// StockQuantity returns how many shares of one company the user owns. A body
// without a quantity field means none.
func (s *Service) StockQuantity(ctx context.Context, companyID uint) (int64, error) {
	raw, err := s.Gateway.Get(ctx, fmt.Sprintf("/user/stocks/%d", companyID))
	if err != nil {
		return 0, err
	}
	var body struct {
		Quantity *int64 `json:"quantity"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, err
	}
	if body.Quantity == nil {
		return 0, nil
	}
	return *body.Quantity, nil
}

// TransactionHistory fetches the append-only trade history.
func (s *Service) TransactionHistory(ctx context.Context) ([]domain.Transaction, error) {
	raw, err := s.Gateway.Get(ctx, "/transactions/history")
	if err != nil {
		return nil, err
	}
	var out []domain.Transaction
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
