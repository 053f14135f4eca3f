package users

import (
	"errors"
	"fmt"

	"theatre/ticketing/internal/storage"
)

var (
	ErrUserNotFound  = fmt.Errorf("user %w", storage.ErrNotFound)
	ErrUsernameTaken = fmt.Errorf("%w: username already registered", storage.ErrConflict)
	ErrInvalidRole   = errors.New("invalid role")
	ErrNotAdmin      = errors.New("existing user is not an admin")
)
