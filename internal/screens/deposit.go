package screens

import (
	"context"

	"github.com/pkg/browser"

	"stocklink-lite/internal/payments"
)

// Deposit is the deposit popup view-model.
type Deposit struct {
	Payments *payments.Service

	// OpenURL opens the checkout page out-of-process. Defaults to the system
	// browser; tests replace it.
	OpenURL func(url string) error
}

// Submit validates the amount, starts the checkout and opens the returned
// URL. Payment completion happens entirely outside the app; nothing polls for
// it, and the balance only changes on the next re-fetch.
func (d *Deposit) Submit(ctx context.Context, amount string) error {
	url, err := d.Payments.Deposit(ctx, amount)
	if err != nil {
		return err
	}
	if url == "" {
		return nil
	}
	open := d.OpenURL
	if open == nil {
		open = browser.OpenURL
	}
	return open(url)
}
