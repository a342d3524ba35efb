package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase/interfaces"
)

const quoteColumns = `record_number, COALESCE(customer_name, ''), COALESCE(phone, ''), COALESCE(tax_id, ''),
	COALESCE(postal_code, ''), COALESCE(address, ''), COALESCE(number, ''), COALESCE(neighborhood, ''),
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(description, ''), COALESCE(payment_method, ''),
	COALESCE(amount, 0)`

// QuoteSQLRepository persists Quote entities in the quotes table.
//
// Table requirements:
//   - PK: record_number
//
// Every quote books its amount in cash_entries under the same number.
type QuoteSQLRepository struct {
	db *database.DB
}

var _ interfaces.IQuoteRepository = (*QuoteSQLRepository)(nil)

func NewQuoteSQLRepository(db *database.DB) *QuoteSQLRepository {
	return &QuoteSQLRepository{db: db}
}

func (r *QuoteSQLRepository) CreateWithCashEntry(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	d := r.db.Dialect
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, d.Rebind(`INSERT INTO quotes (record_number, customer_name, phone, tax_id, postal_code,
			address, number, neighborhood, city, state, description, payment_method, amount)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			q.RecordNumber, q.CustomerName, q.Phone, q.TaxID, q.PostalCode,
			q.Address, q.Number, q.Neighborhood, q.City, q.State, q.Description, q.PaymentMethod, q.Amount,
		)
		if err != nil {
			return translateError("insert quote", err)
		}

		_, err = tx.ExecContext(ctx, d.Rebind(`INSERT INTO cash_entries (receipt_number, amount, entry_date)
			VALUES (?, ?, CURRENT_TIMESTAMP)`),
			strconv.FormatInt(q.RecordNumber, 10), q.Amount,
		)
		return translateError("insert quote cash entry", err)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteSQLRepository) List(ctx context.Context) ([]entities.Quote, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+quoteColumns+" FROM quotes ORDER BY record_number DESC")
	if err != nil {
		return nil, translateError("list quotes", err)
	}
	defer rows.Close()

	quotes := make([]entities.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *QuoteSQLRepository) GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, r.db.Dialect.Rebind("SELECT "+quoteColumns+" FROM quotes WHERE record_number = ?"), recordNumber)
	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, translateError("get quote", err)
	}
	return q, nil
}

func scanQuote(s rowScanner) (entities.Quote, error) {
	var q entities.Quote
	err := s.Scan(&q.RecordNumber, &q.CustomerName, &q.Phone, &q.TaxID, &q.PostalCode, &q.Address, &q.Number,
		&q.Neighborhood, &q.City, &q.State, &q.Description, &q.PaymentMethod, &q.Amount)
	return q, err
}
