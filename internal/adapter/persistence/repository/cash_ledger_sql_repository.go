package repository

import (
	"context"
	"database/sql"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase/interfaces"
)

const cashEntryColumns = "id, receipt_number, amount, entry_date, description"

// CashLedgerSQLRepository persists CashEntry entities in the cash_entries table.
type CashLedgerSQLRepository struct {
	db *database.DB
}

var _ interfaces.ICashLedgerRepository = (*CashLedgerSQLRepository)(nil)

func NewCashLedgerSQLRepository(db *database.DB) *CashLedgerSQLRepository {
	return &CashLedgerSQLRepository{db: db}
}

// Create inserts the entry stamped with the database clock and returns the stored row.
func (r *CashLedgerSQLRepository) Create(ctx context.Context, e entities.CashEntry) (entities.CashEntry, error) {
	d := r.db.Dialect
	var created entities.CashEntry
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, d.Rebind(`INSERT INTO cash_entries (receipt_number, amount, entry_date, description)
			VALUES (?, ?, CURRENT_TIMESTAMP, ?)`),
			e.ReceiptNumber, e.Amount, nullableString(e.Description),
		)
		if err != nil {
			return translateError("insert cash entry", err)
		}

		row := tx.QueryRowContext(ctx, d.Rebind("SELECT "+cashEntryColumns+" FROM cash_entries WHERE receipt_number = ?"), e.ReceiptNumber)
		created, err = scanCashEntry(row)
		return translateError("read cash entry", err)
	})
	if err != nil {
		return entities.CashEntry{}, err
	}
	return created, nil
}

func (r *CashLedgerSQLRepository) UpdateAmount(ctx context.Context, receiptNumber string, amount float64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Dialect.Rebind("UPDATE cash_entries SET amount = ? WHERE receipt_number = ?"), amount, receiptNumber)
	if err != nil {
		return 0, translateError("update cash entry", err)
	}
	return res.RowsAffected()
}

func (r *CashLedgerSQLRepository) Delete(ctx context.Context, receiptNumber string) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.db.Dialect.Rebind("DELETE FROM cash_entries WHERE receipt_number = ?"), receiptNumber)
	if err != nil {
		return 0, translateError("delete cash entry", err)
	}
	return res.RowsAffected()
}

func (r *CashLedgerSQLRepository) List(ctx context.Context) ([]entities.CashEntry, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+cashEntryColumns+" FROM cash_entries ORDER BY id")
	if err != nil {
		return nil, translateError("list cash entries", err)
	}
	defer rows.Close()

	entries := make([]entities.CashEntry, 0)
	for rows.Next() {
		e, err := scanCashEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanCashEntry(s rowScanner) (entities.CashEntry, error) {
	var (
		e           entities.CashEntry
		date        dbTime
		description sql.NullString
	)
	if err := s.Scan(&e.ID, &e.ReceiptNumber, &e.Amount, &date, &description); err != nil {
		return entities.CashEntry{}, err
	}
	e.Date = date.Time
	e.Description = stringPtr(description)
	return e, nil
}
