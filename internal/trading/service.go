// Package trading executes buy orders against the backend.
package trading

import (
	"context"
	"errors"

	"stocklink-lite/internal/gateway"
	"stocklink-lite/internal/pkg/validation"
)

var ErrInvalidShareCount = errors.New("Share count must be a positive whole number")

type Service struct {
	Gateway *gateway.Client
}

type buyRequest struct {
	CompanyID uint  `json:"companyId"`
	Quantity  int64 `json:"quantity"`
}

// Buy places a market buy for quantity shares of a company. Local balance and
// holdings are never adjusted here; callers re-fetch after a confirmed buy to
// see the new server state.
func (s *Service) Buy(ctx context.Context, companyID uint, quantity int64) error {
	if !validation.IsValidShareCount(quantity) {
		return ErrInvalidShareCount
	}
	_, err := s.Gateway.Post(ctx, "/companies/stock/buy", buyRequest{
		CompanyID: companyID,
		Quantity:  quantity,
	})
	return err
}
