package repository

import (
	"context"
	"database/sql"
	"errors"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase/interfaces"
)

const customerColumns = `id, name, COALESCE(phone, ''), COALESCE(tax_id, ''), COALESCE(postal_code, ''),
	COALESCE(address, ''), COALESCE(number, ''), COALESCE(neighborhood, ''), COALESCE(city, ''), COALESCE(state, '')`

// nameKeyExpr is the SQL side of entities.NameLookupKey.
const nameKeyExpr = "REPLACE(UPPER(name), ' ', '')"

// CustomerSQLRepository persists Customer entities in the customers table.
type CustomerSQLRepository struct {
	db *database.DB
}

var _ interfaces.ICustomerRepository = (*CustomerSQLRepository)(nil)

func NewCustomerSQLRepository(db *database.DB) *CustomerSQLRepository {
	return &CustomerSQLRepository{db: db}
}

func (r *CustomerSQLRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	query := `INSERT INTO customers (name, phone, tax_id, postal_code, address, number, neighborhood, city, state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{c.Name, c.Phone, c.TaxID, c.PostalCode, c.Address, c.Number, c.Neighborhood, c.City, c.State}

	if r.db.Dialect.Returning {
		if err := r.db.QueryRowContext(ctx, r.db.Dialect.Rebind(query+" RETURNING id"), args...).Scan(&c.ID); err != nil {
			return entities.Customer{}, translateError("insert customer", err)
		}
		return c, nil
	}

	res, err := r.db.ExecContext(ctx, r.db.Dialect.Rebind(query), args...)
	if err != nil {
		return entities.Customer{}, translateError("insert customer", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerSQLRepository) List(ctx context.Context) ([]entities.Customer, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY id")
	if err != nil {
		return nil, translateError("list customers", err)
	}
	defer rows.Close()

	customers := make([]entities.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerSQLRepository) FindByNameKey(ctx context.Context, key string) (entities.Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers WHERE " + nameKeyExpr + " = ? ORDER BY id LIMIT 1"
	c, err := scanCustomer(r.db.QueryRowContext(ctx, r.db.Dialect.Rebind(query), key))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, translateError("find customer", err)
	}
	return c, nil
}

func (r *CustomerSQLRepository) DeleteByNameKey(ctx context.Context, key string) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Dialect.Rebind("DELETE FROM customers WHERE "+nameKeyExpr+" = ?"), key)
	if err != nil {
		return 0, translateError("delete customer", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(s rowScanner) (entities.Customer, error) {
	var c entities.Customer
	err := s.Scan(&c.ID, &c.Name, &c.Phone, &c.TaxID, &c.PostalCode, &c.Address, &c.Number, &c.Neighborhood, &c.City, &c.State)
	return c, err
}
