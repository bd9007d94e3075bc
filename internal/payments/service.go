// Package payments starts deposit checkouts.
package payments

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"stocklink-lite/internal/gateway"
	"stocklink-lite/internal/pkg/validation"
)

type Service struct {
	Gateway *gateway.Client
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type depositResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// Deposit validates the entered amount and submits it. The returned URL, when
// present, must be opened out-of-process; payment completion is fully
// external and is never polled.
func (s *Service) Deposit(ctx context.Context, amount string) (string, error) {
	amt, err := validation.ParseDepositAmount(amount)
	if err != nil {
		return "", err
	}
	raw, err := s.Gateway.Post(ctx, "/payment/deposit", depositRequest{Amount: amt})
	if err != nil {
		return "", err
	}
	var body depositResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", err
	}
	return body.CheckoutURL, nil
}
