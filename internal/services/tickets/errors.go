package tickets

import (
	"errors"
	"fmt"

	"theatre/ticketing/internal/domain/fields"
	"theatre/ticketing/internal/storage"
)

var (
	ErrTicketNotFound   = fmt.Errorf("ticket %w", storage.ErrNotFound)
	ErrTicketExists     = fmt.Errorf("%w: ticket or ticket number already exists", storage.ErrConflict)
	ErrUnknownReference = fmt.Errorf("%w: referenced play/showtime/customer does not exist", storage.ErrInvalidReference)
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrPriceOutOfRange  = errors.New("price must not exceed " + fields.MaxPrice)
	ErrInvalidValue     = fmt.Errorf("%w: ticket_no or price does not fit its column", storage.ErrInvalidValue)
)
