// Package credentials persists the session token pair across process
// restarts. Two backends exist: a local SQLite file (the analog of the mobile
// build's AsyncStorage table) and Redis for headless deployments.
package credentials

import (
	"context"
	"fmt"

	"stocklink-lite/internal/domain"
)

const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
)

// Store persists the Session token pair. Get before any Set returns an empty
// Session, which downstream treats as logged out. Implementations must set
// and clear both tokens together — the pair is never half-written.
type Store interface {
	Get(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}

// StorageError wraps a failed credential read or write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("credentials %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
