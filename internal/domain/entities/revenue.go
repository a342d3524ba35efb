package entities

import "time"

// RevenueDateLayout is the calendar-date format revenue rows are keyed by.
const RevenueDateLayout = "2006-01-02"

// Revenue is the daily revenue summary (faturamento).
//
// Storage model (SQL):
//   - PK: id (auto increment)
//   - UNIQUE: date; writes for an existing date overwrite the row.
type Revenue struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Profit    float64   `json:"profit"`
	Expense   float64   `json:"expense"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
