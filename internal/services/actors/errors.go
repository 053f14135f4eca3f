package actors

import (
	"fmt"

	"theatre/ticketing/internal/storage"
)

var (
	ErrActorNotFound = fmt.Errorf("actor %w", storage.ErrNotFound)
	ErrUnknownPlay   = fmt.Errorf("%w: play does not exist", storage.ErrInvalidReference)
)
