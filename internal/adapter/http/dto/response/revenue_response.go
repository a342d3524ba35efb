package response

import (
	"phone_repair/internal/domain/entities"
	"time"
)

type RevenueResponse struct {
	ID        int64     `json:"id"`
	Profit    float64   `json:"profit"`
	Expense   float64   `json:"expense"`
	Total     float64   `json:"total"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// RevenueRecordedResponse echoes the effective values of a revenue write.
type RevenueRecordedResponse struct {
	Message string  `json:"message"`
	Profit  float64 `json:"profit"`
	Expense float64 `json:"expense"`
	Total   float64 `json:"total"`
	Date    string  `json:"date"`
}

func FromRevenue(r entities.Revenue) RevenueResponse {
	return RevenueResponse{
		ID:        r.ID,
		Profit:    r.Profit,
		Expense:   r.Expense,
		Total:     r.Total,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
	}
}

func FromRevenues(rs []entities.Revenue) []RevenueResponse {
	out := make([]RevenueResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRevenue(r))
	}
	return out
}

func RevenueRecorded(message string, r entities.Revenue) RevenueRecordedResponse {
	return RevenueRecordedResponse{
		Message: message,
		Profit:  r.Profit,
		Expense: r.Expense,
		Total:   r.Total,
		Date:    r.Date,
	}
}
