package domain

// RegistrationDraft accumulates signup input across the wizard's three steps.
// It lives only in process memory for the wizard's lifetime and is discarded
// after submit or abandonment. Drafts are values: each step gets a copy, so a
// later step can never mutate an earlier one.
type RegistrationDraft struct {
	Name       string
	Email      string
	Password   string
	Age        string
	Gender     string
	Experience string
}

// WithAccount returns a copy of the draft with the first step's fields set.
func (d RegistrationDraft) WithAccount(name, email, password string) RegistrationDraft {
	d.Name = name
	d.Email = email
	d.Password = password
	return d
}

// WithProfile returns a copy of the draft with the final step's fields set.
func (d RegistrationDraft) WithProfile(age, gender, experience string) RegistrationDraft {
	d.Age = age
	d.Gender = gender
	d.Experience = experience
	return d
}
