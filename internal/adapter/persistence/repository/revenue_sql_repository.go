package repository

import (
	"context"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase/interfaces"
)

// RevenueSQLRepository persists the daily revenue summary in the revenues table.
//
// Table requirements:
//   - UNIQUE: revenue_date, the conflict target of the upsert.
type RevenueSQLRepository struct {
	db *database.DB
}

var _ interfaces.IRevenueRepository = (*RevenueSQLRepository)(nil)

func NewRevenueSQLRepository(db *database.DB) *RevenueSQLRepository {
	return &RevenueSQLRepository{db: db}
}

// Upsert writes the row for r.Date in one statement. created_at keeps the
// value of the first write.
func (r *RevenueSQLRepository) Upsert(ctx context.Context, rev entities.Revenue) error {
	d := r.db.Dialect
	query := "INSERT INTO revenues (revenue_date, profit, expense, total) VALUES (?, ?, ?, ?)" +
		d.UpsertSuffix("revenue_date", "profit", "expense", "total")

	_, err := r.db.ExecContext(ctx, d.Rebind(query), rev.Date, rev.Profit, rev.Expense, rev.Total)
	return translateError("upsert revenue", err)
}

func (r *RevenueSQLRepository) ListByDate(ctx context.Context, date string) ([]entities.Revenue, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Dialect.Rebind(`SELECT id, revenue_date, COALESCE(profit, 0), COALESCE(expense, 0),
		COALESCE(total, 0), created_at FROM revenues WHERE revenue_date = ? ORDER BY id`), date)
	if err != nil {
		return nil, translateError("list revenues", err)
	}
	defer rows.Close()

	revenues := make([]entities.Revenue, 0)
	for rows.Next() {
		var (
			rev       entities.Revenue
			createdAt dbTime
		)
		if err := rows.Scan(&rev.ID, &rev.Date, &rev.Profit, &rev.Expense, &rev.Total, &createdAt); err != nil {
			return nil, err
		}
		rev.CreatedAt = createdAt.Time
		revenues = append(revenues, rev)
	}
	return revenues, rows.Err()
}
