package auth

import "errors"

var (
	ErrEmailPasswordRequired = errors.New("Email and password are required")
	ErrInvalidEmail          = errors.New("Enter a valid email address")
	ErrIncompleteDraft       = errors.New("Complete all signup steps first")
)
