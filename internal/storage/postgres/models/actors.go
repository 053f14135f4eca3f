package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const actorColumns = "id, name, gender, date_of_birth, play_id"

type ActorModel struct {
	DB *pgxpool.Pool
}

func (m *ActorModel) Get(ctx context.Context, id int64) (*models.Actor, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+actorColumns+" FROM actors WHERE id = $1", id)
	actor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &actor, nil
}

func (m *ActorModel) Insert(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO actors (name, gender, date_of_birth, play_id) VALUES ($1, $2, $3, $4) RETURNING "+actorColumns,
		actor.Name,
		actor.Gender,
		actor.DateOfBirth,
		actor.PlayID,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &created, nil
}

func (m *ActorModel) List(ctx context.Context, pagination filters.Pagination) ([]models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT "+actorColumns+" FROM actors ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit,
		pagination.Offset(),
	)
	actors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return actors, nil
}

func (m *ActorModel) Update(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE actors SET name = $1, gender = $2, date_of_birth = $3, play_id = $4
		WHERE id = $5 RETURNING `+actorColumns,
		actor.Name,
		actor.Gender,
		actor.DateOfBirth,
		actor.PlayID,
		actor.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &updated, nil
}

func (m *ActorModel) Delete(ctx context.Context, id int64) (*models.Actor, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM actors WHERE id = $1 RETURNING "+actorColumns, id)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &deleted, nil
}
