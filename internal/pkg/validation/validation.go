// Package validation holds the client-side input checks run before any
// network call.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidAmount rejects a deposit amount that is not a well-formed
// positive number.
var ErrInvalidAmount = errors.New("Enter a valid positive amount")

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidShareCount accepts positive whole share counts only.
func IsValidShareCount(n int64) bool {
	return n > 0
}

// ParseDepositAmount parses a user-entered amount before it goes anywhere
// near the network.
func ParseDepositAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.Sign() <= 0 {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}
