package models

import (
	"context"

	"theatre/ticketing/internal/domain/filters"
	"theatre/ticketing/internal/domain/models"
	"theatre/ticketing/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = "id, name, phone_number, email, address"

type CustomerModel struct {
	DB *pgxpool.Pool
}

func (m *CustomerModel) Get(ctx context.Context, id int64) (*models.Customer, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	customer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &customer, nil
}

func (m *CustomerModel) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+customerColumns+" FROM customers WHERE email = $1", email)
	customer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &customer, nil
}

func (m *CustomerModel) Insert(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO customers (name, phone_number, email, address)
		VALUES ($1, $2, $3, $4) RETURNING `+customerColumns,
		customer.Name,
		customer.PhoneNumber,
		customer.Email,
		customer.Address,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &created, nil
}

func (m *CustomerModel) List(ctx context.Context, pagination filters.Pagination) ([]models.Customer, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY id LIMIT $1 OFFSET $2",
		pagination.Limit,
		pagination.Offset(),
	)
	customers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return customers, nil
}

func (m *CustomerModel) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE customers SET name = $1, phone_number = $2, email = $3, address = $4
		WHERE id = $5 RETURNING `+customerColumns,
		customer.Name,
		customer.PhoneNumber,
		customer.Email,
		customer.Address,
		customer.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, postgres.ConvertErr(err, false)
	}
	return &updated, nil
}

func (m *CustomerModel) Delete(ctx context.Context, id int64) (*models.Customer, error) {
	rows, _ := m.DB.Query(ctx, "DELETE FROM customers WHERE id = $1 RETURNING "+customerColumns, id)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, postgres.ConvertErr(err, true)
	}
	return &deleted, nil
}
