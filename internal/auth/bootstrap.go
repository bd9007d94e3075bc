package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"stocklink-lite/internal/credentials"
)

// State is the bootstrap outcome decided once at process start. The app only
// leaves Authenticated through an explicit logout; there is no heartbeat or
// periodic re-validation.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Bootstrap reads the credential store and decides where the app starts. A
// present access token is trusted as-is until the backend rejects it. A
// storage read failure is treated as logged out.
func Bootstrap(ctx context.Context, store credentials.Store) State {
	sess, err := store.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Credential read failed at startup; treating as logged out")
		return Unauthenticated
	}
	if sess.AccessToken != "" {
		return Authenticated
	}
	return Unauthenticated
}
