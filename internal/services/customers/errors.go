package customers

import (
	"fmt"

	"theatre/ticketing/internal/storage"
)

var (
	ErrCustomerNotFound = fmt.Errorf("customer %w", storage.ErrNotFound)
	ErrEmailTaken       = fmt.Errorf("%w: email already registered", storage.ErrConflict)
	ErrCustomerInUse    = fmt.Errorf("customer is %w", storage.ErrReferenced)
)
