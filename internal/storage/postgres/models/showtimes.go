package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const showTimeColumns = "id, date_and_time, play_id"

type ShowTimeModel struct {
	DB *pgxpool.Pool
}

func (m *ShowTimeModel) Get(ctx context.Context, id int64) (*models.ShowTime, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+showTimeColumns+" FROM showtimes WHERE id = $1", id)
	showtime, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ShowTime])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &showtime, nil
}

func (m *ShowTimeModel) Insert(ctx context.Context, showtime *models.ShowTime) (*models.ShowTime, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO showtimes (date_and_time, play_id) VALUES ($1, $2) RETURNING "+showTimeColumns,
		showtime.DateAndTime,
		showtime.PlayID,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ShowTime])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &created, nil
}

func (m *ShowTimeModel) List(ctx context.Context, pagination filters.Pagination) ([]models.ShowTime, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT "+showTimeColumns+" FROM showtimes ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit,
		pagination.Offset(),
	)
	showtimes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ShowTime])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return showtimes, nil
}

func (m *ShowTimeModel) Update(ctx context.Context, showtime *models.ShowTime) (*models.ShowTime, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE showtimes SET date_and_time = $1, play_id = $2 WHERE id = $3 RETURNING "+showTimeColumns,
		showtime.DateAndTime,
		showtime.PlayID,
		showtime.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ShowTime])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &updated, nil
}

func (m *ShowTimeModel) Delete(ctx context.Context, id int64) (*models.ShowTime, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM showtimes WHERE id = $1 RETURNING "+showTimeColumns, id)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ShowTime])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &deleted, nil
}
