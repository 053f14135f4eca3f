package tickets

import (
	"context"
	"errors"
	"log/slog"

	"theatre/ticketing/internal/domain/fields"
	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage"
)

type TicketsStorage interface {
	Get(ctx context.Context, key models.TicketKey) (*models.Ticket, error)
	GetByNumber(ctx context.Context, ticketNo string) (*models.Ticket, error)
	Insert(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)
	List(ctx context.Context, pagination filters.Pagination) ([]models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)
	Delete(ctx context.Context, key models.TicketKey) (*models.Ticket, error)
}

// TicketService does not check that a ticket's play matches its showtime's
// play, and a seat can be booked once per customer.
type TicketService struct {
	log     *slog.Logger
	storage TicketsStorage
}

func New(log *slog.Logger, storage TicketsStorage) *TicketService {
	return &TicketService{
		log:     log,
		storage: storage,
	}
}

func checkPrice(price fields.Price) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.InRange() {
		return ErrPriceOutOfRange
	}
	return nil
}

func keyAttrs(key models.TicketKey) []any {
	return []any{
		"showtime_id", key.ShowtimeID,
		"play_id", key.PlayID,
		"customer_id", key.CustomerID,
		"seat_row_no", key.SeatRowNo,
		"seat_no", key.SeatNo,
	}
}

func (s *TicketService) Get(ctx context.Context, key models.TicketKey) (*models.Ticket, error) {
	const op = "tickets.TicketService.Get"
	log := s.log.With("op", op).With(keyAttrs(key)...)
	ticket, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("ticket not found")
			return nil, ErrTicketNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) GetByNumber(ctx context.Context, ticketNo string) (*models.Ticket, error) {
	const op = "tickets.TicketService.GetByNumber"
	log := s.log.With("op", op, "ticket_no", ticketNo)
	ticket, err := s.storage.GetByNumber(ctx, ticketNo)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("ticket not found")
			return nil, ErrTicketNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) Create(ctx context.Context, ticket models.Ticket) (*models.Ticket, error) {
	const op = "tickets.TicketService.Create"
	log := s.log.With("op", op).With(keyAttrs(ticket.TicketKey)...)
	if err := checkPrice(ticket.Price); err != nil {
		return nil, err
	}
	created, err := s.storage.Insert(ctx, &ticket)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("ticket already exists")
			return nil, ErrTicketExists
		case errors.Is(err, storage.ErrInvalidReference):
			log.Info("ticket references missing rows")
			return nil, ErrUnknownReference
		case errors.Is(err, storage.ErrInvalidValue):
			log.Info("ticket value rejected", "reason", err.Error())
			return nil, ErrInvalidValue
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("ticket created")
	return created, nil
}

func (s *TicketService) List(ctx context.Context, pagination filters.Pagination) ([]models.Ticket, error) {
	const op = "tickets.TicketService.List"
	log := s.log.With("op", op, "skip", pagination.Skip, "limit", pagination.Limit)
	tickets, err := s.storage.List(ctx, pagination)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return tickets, nil
}

func (s *TicketService) Update(ctx context.Context, key models.TicketKey, patch models.TicketPatch) (*models.Ticket, error) {
	const op = "tickets.TicketService.Update"
	log := s.log.With("op", op).With(keyAttrs(key)...)
	if patch.Price != nil {
		if err := checkPrice(*patch.Price); err != nil {
			return nil, err
		}
	}
	ticket, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	patch.Apply(ticket)
	updated, err := s.storage.Update(ctx, ticket)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("ticket removed before update")
			return nil, ErrTicketNotFound
		case errors.Is(err, storage.ErrConflict):
			// ticket_no is the only unique column an update can touch
			log.Info("ticket number already used")
			return nil, ErrTicketExists
		case errors.Is(err, storage.ErrInvalidValue):
			log.Info("ticket value rejected", "reason", err.Error())
			return nil, ErrInvalidValue
		}
		log.Error("Error updating ticket: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *TicketService) Delete(ctx context.Context, key models.TicketKey) (*models.Ticket, error) {
	const op = "tickets.TicketService.Delete"
	log := s.log.With("op", op).With(keyAttrs(key)...)
	deleted, err := s.storage.Delete(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("ticket not found")
			return nil, ErrTicketNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("ticket deleted")
	return deleted, nil
}
