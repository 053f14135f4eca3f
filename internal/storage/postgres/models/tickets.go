package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ticketColumns = "seat_row_no, seat_no, showtime_id, play_id, customer_id, ticket_no, price"
	ticketByKey   = "seat_row_no = $1 AND seat_no = $2 AND showtime_id = $3 AND play_id = $4 AND customer_id = $5"
)

type TicketModel struct {
	DB *pgxpool.Pool
}

func keyArgs(key models.TicketKey) []any {
	return []any{key.SeatRowNo, key.SeatNo, key.ShowtimeID, key.PlayID, key.CustomerID}
}

func (m *TicketModel) Get(ctx context.Context, key models.TicketKey) (*models.Ticket, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+ticketColumns+" FROM tickets WHERE "+ticketByKey, keyArgs(key)...)
	ticket, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &ticket, nil
}

func (m *TicketModel) GetByNumber(ctx context.Context, ticketNo string) (*models.Ticket, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+ticketColumns+" FROM tickets WHERE ticket_no = $1", ticketNo)
	ticket, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &ticket, nil
}

func (m *TicketModel) Insert(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	args := append(keyArgs(ticket.TicketKey), ticket.TicketNo, ticket.Price)
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO tickets (`+ticketColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+ticketColumns,
		args...,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &created, nil
}

func (m *TicketModel) List(ctx context.Context, pagination filters.Pagination) ([]models.Ticket, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT `+ticketColumns+` FROM tickets
		ORDER BY showtime_id, seat_row_no, seat_no, play_id, customer_id LIMIT $1 OFFSET $2`,
		pagination.Limit,
		pagination.Offset(),
	)
	tickets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return tickets, nil
}

func (m *TicketModel) Update(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	args := append(keyArgs(ticket.TicketKey), ticket.TicketNo, ticket.Price)
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE tickets SET ticket_no = $6, price = $7 WHERE "+ticketByKey+" RETURNING "+ticketColumns,
		args...,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &updated, nil
}

func (m *TicketModel) Delete(ctx context.Context, key models.TicketKey) (*models.Ticket, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM tickets WHERE "+ticketByKey+" RETURNING "+ticketColumns, keyArgs(key)...)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Ticket])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &deleted, nil
}
