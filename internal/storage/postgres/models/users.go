package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, username, hash_password, role"

type UserModel struct {
	DB *pgxpool.Pool
}

func (m *UserModel) Get(ctx context.Context, id int64) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &user, nil
}

func (m *UserModel) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &user, nil
}

func (m *UserModel) Insert(ctx context.Context, username, passwordHash, role string) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO users (username, hash_password, role) VALUES ($1, $2, $3) RETURNING "+userColumns,
		username,
		passwordHash,
		role,
	)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &user, nil
}

func (m *UserModel) List(ctx context.Context, pagination filters.Pagination) ([]models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit,
		pagination.Offset(),
	)
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return users, nil
}

func (m *UserModel) UpdateRole(ctx context.Context, id int64, role string) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "UPDATE users SET role = $1 WHERE id = $2 RETURNING "+userColumns, role, id)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &user, nil
}

func (m *UserModel) Delete(ctx context.Context, id int64) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM users WHERE id = $1 RETURNING "+userColumns, id)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &user, nil
}
