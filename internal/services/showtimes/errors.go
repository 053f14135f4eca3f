package showtimes

import (
	"fmt"

	"theatre/ticketing/internal/storage"
)

var (
	ErrShowTimeNotFound = fmt.Errorf("showtime %w", storage.ErrNotFound)
	ErrUnknownPlay      = fmt.Errorf("%w: play does not exist", storage.ErrInvalidReference)
	ErrShowTimeInUse    = fmt.Errorf("showtime is %w", storage.ErrReferenced)
)
