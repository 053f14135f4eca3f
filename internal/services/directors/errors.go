package directors

import (
	"fmt"

	"theatre/ticketing/internal/storage"
)

var (
	ErrDirectorNotFound = fmt.Errorf("director %w", storage.ErrNotFound)
	ErrUnknownPlay      = fmt.Errorf("%w: play does not exist", storage.ErrInvalidReference)
)
