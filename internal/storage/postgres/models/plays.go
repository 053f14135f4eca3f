package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const playColumns = "id, title, genre, synopsis, duration"

type PlayModel struct {
	DB *pgxpool.Pool
}

func (m *PlayModel) Get(ctx context.Context, id int64) (*models.Play, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+playColumns+" FROM plays WHERE id = $1", id)
	play, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Play])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &play, nil
}

func (m *PlayModel) Insert(ctx context.Context, play *models.Play) (*models.Play, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO plays (title, genre, synopsis, duration) VALUES ($1, $2, $3, $4) RETURNING "+playColumns,
		play.Title,
		play.Genre,
		play.Synopsis,
		play.Duration,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Play])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &created, nil
}

func (m *PlayModel) List(ctx context.Context, pagination filters.Pagination) ([]models.Play, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT "+playColumns+" FROM plays ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit,
		pagination.Offset(),
	)
	plays, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Play])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return plays, nil
}

func (m *PlayModel) Update(ctx context.Context, play *models.Play) (*models.Play, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE plays SET title = $1, genre = $2, synopsis = $3, duration = $4
		WHERE id = $5 RETURNING `+playColumns,
		play.Title,
		play.Genre,
		play.Synopsis,
		play.Duration,
		play.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Play])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &updated, nil
}

func (m *PlayModel) Delete(ctx context.Context, id int64) (*models.Play, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM plays WHERE id = $1 RETURNING "+playColumns, id)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Play])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &deleted, nil
}
