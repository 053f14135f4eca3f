package plays

import (
	"fmt"

	"theatre/ticketing/internal/storage"
)

var (
	ErrPlayNotFound = fmt.Errorf("play %w", storage.ErrNotFound)
	ErrPlayInUse    = fmt.Errorf("play is %w", storage.ErrReferenced)
)
