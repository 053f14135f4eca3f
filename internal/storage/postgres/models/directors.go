package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const directorColumns = "id, name, play_id"

type DirectorModel struct {
	DB *pgxpool.Pool
}

func (m *DirectorModel) Get(ctx context.Context, id int64) (*models.Director, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+directorColumns+" FROM directors WHERE id = $1", id)
	director, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Director])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &director, nil
}

func (m *DirectorModel) Insert(ctx context.Context, director *models.Director) (*models.Director, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO directors (name, play_id) VALUES ($1, $2) RETURNING "+directorColumns,
		director.Name,
		director.PlayID,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Director])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &created, nil
}

func (m *DirectorModel) List(ctx context.Context, pagination filters.Pagination) ([]models.Director, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT "+directorColumns+" FROM directors ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit,
		pagination.Offset(),
	)
	directors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Director])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return directors, nil
}

func (m *DirectorModel) Update(ctx context.Context, director *models.Director) (*models.Director, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE directors SET name = $1, play_id = $2 WHERE id = $3 RETURNING "+directorColumns,
		director.Name,
		director.PlayID,
		director.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Director])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &updated, nil
}

func (m *DirectorModel) Delete(ctx context.Context, id int64) (*models.Director, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM directors WHERE id = $1 RETURNING "+directorColumns, id)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Director])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &deleted, nil
}
