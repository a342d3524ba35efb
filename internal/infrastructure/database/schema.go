package database

import (
	"context"
	"fmt"
)

// RecordNumberSeed is the value the record sequence starts from; the first
// reserved number is RecordNumberSeed - 1.
const RecordNumberSeed = 999999

func (d Dialect) schema() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS customers (
			id %s,
			name TEXT NOT NULL,
			phone TEXT,
			tax_id TEXT,
			postal_code TEXT,
			address TEXT,
			number TEXT,
			neighborhood TEXT,
			city TEXT,
			state TEXT
		)`, d.autoIncrementPK),
		`CREATE TABLE IF NOT EXISTS record_numbers (
			number BIGINT PRIMARY KEY
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS quotes (
			record_number BIGINT PRIMARY KEY,
			customer_name TEXT,
			phone TEXT,
			tax_id TEXT,
			postal_code TEXT,
			address TEXT,
			number TEXT,
			neighborhood TEXT,
			city TEXT,
			state TEXT,
			description TEXT,
			payment_method TEXT,
			amount %s
		)`, d.realType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS cash_entries (
			id %s,
			receipt_number %s NOT NULL UNIQUE,
			entry_date %s NOT NULL,
			amount %s NOT NULL,
			description TEXT
		)`, d.autoIncrementPK, d.textKeyType, d.timestampType, d.realType),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS revenues (
			id %s,
			revenue_date %s NOT NULL UNIQUE,
			profit %s,
			expense %s,
			total %s,
			created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, d.autoIncrementPK, d.textKeyType, d.realType, d.realType, d.realType, d.timestampType),
	}
}

// InitializeTables creates the tables that do not exist yet and seeds the
// record sequence when it is empty. It is safe to run on every start.
func (db *DB) InitializeTables(ctx context.Context) error {
	for _, stmt := range db.Dialect.schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM record_numbers").Scan(&count); err != nil {
		return fmt.Errorf("failed to count record numbers: %w", err)
	}
	if count == 0 {
		if _, err := db.ExecContext(ctx, db.Dialect.Rebind("INSERT INTO record_numbers (number) VALUES (?)"), RecordNumberSeed); err != nil {
			return fmt.Errorf("failed to seed record numbers: %w", err)
		}
	}
	return nil
}
