package services

import (
	"errors"
)

var (
	// ErrInvalidCredentials is returned when no administrator matches the login credentials.
	// Unknown emails and wrong passwords are not told apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
