// Package auth owns the session lifecycle: login, registration, logout and
// the cold-start bootstrap decision.
package auth

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"stocklink-lite/internal/credentials"
	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/gateway"
	"stocklink-lite/internal/pkg/validation"
)

type Service struct {
	Gateway     *gateway.Client
	Credentials credentials.Store
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a token pair and stores both tokens
// together on success.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrEmailPasswordRequired
	}
	if !validation.IsValidEmail(email) {
		return ErrInvalidEmail
	}

	raw, err := s.Gateway.PostPublic(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	var body loginResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	return s.Credentials.Set(ctx, domain.Session{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
	})
}

// registerRequest matches the backend's field casing exactly.
type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	AgeRange  string `json:"ageRange"`
	Sex       string `json:"Sex"`
	Level     string `json:"Level"`
	Password  string `json:"password"`
}

// Register submits a completed wizard draft. Registration does not log the
// user in; the login screen follows.
func (s *Service) Register(ctx context.Context, draft domain.RegistrationDraft) error {
	if draft.Name == "" || draft.Email == "" || draft.Password == "" {
		return ErrIncompleteDraft
	}
	if !validation.IsValidEmail(draft.Email) {
		return ErrInvalidEmail
	}

	first, last := splitName(draft.Name)
	_, err := s.Gateway.PostPublic(ctx, "/auth/register", registerRequest{
		FirstName: first,
		LastName:  last,
		Email:     draft.Email,
		AgeRange:  draft.Age,
		Sex:       draft.Gender,
		Level:     draft.Experience,
		Password:  draft.Password,
	})
	return err
}

func splitName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// Logout clears the stored token pair. There is no server-side logout call,
// and the session ends even when the store reports a failure; the caller
// routes to the login screen regardless.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.Credentials.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("Credential clear failed during logout")
		return err
	}
	return nil
}
