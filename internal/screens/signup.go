package screens

import (
	"context"

	"stocklink-lite/internal/auth"
	"stocklink-lite/internal/domain"
)

// SignupWizard carries the registration draft across the three signup steps.
// The draft lives only as long as the wizard; abandoning the wizard discards
// it. Each step replaces the draft with an updated copy rather than mutating
// shared state.
type SignupWizard struct {
	Auth *auth.Service

	draft domain.RegistrationDraft
}

// EnterAccount records step one: name, email and password.
func (w *SignupWizard) EnterAccount(name, email, password string) {
	w.draft = w.draft.WithAccount(name, email, password)
}

// EnterProfile records the final step: age range, gender and experience.
func (w *SignupWizard) EnterProfile(age, gender, experience string) {
	w.draft = w.draft.WithProfile(age, gender, experience)
}

// Draft returns the accumulated draft.
func (w *SignupWizard) Draft() domain.RegistrationDraft {
	return w.draft
}

// Submit sends the completed draft as one request and discards it on success.
// On failure the draft is kept so the user can retry.
func (w *SignupWizard) Submit(ctx context.Context) error {
	if err := w.Auth.Register(ctx, w.draft); err != nil {
		return err
	}
	w.draft = domain.RegistrationDraft{}
	return nil
}
