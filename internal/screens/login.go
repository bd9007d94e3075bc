package screens

import (
	"context"

	"stocklink-lite/internal/auth"
)

// Login is the login screen view-model.
type Login struct {
	Auth *auth.Service
}

// Submit attempts a login. On success the credential store holds the new
// token pair and the caller routes to the authenticated area. On failure the
// screen stays put for a manual retry.
func (l *Login) Submit(ctx context.Context, email, password string) error {
	return l.Auth.Login(ctx, email, password)
}
