package auth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("Incorrect username or password")
	ErrInvalidToken       = errors.New("Could not validate credentials")
	ErrForbidden          = errors.New("access denied")
)

// ForbiddenError names the role a route required.
type ForbiddenError struct {
	Required string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("Access denied: %s role required", e.Required)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
