package interfaces

import (
	"context"
	"phone_repair/internal/domain/entities"
)

//go:generate mockgen -source=revenue_repository_interface.go -destination=mocks/revenue_repository_mock.go -package=mock_interfaces

// IRevenueRepository abstracts SQL persistence for the daily revenue summary.
type IRevenueRepository interface {
	// Upsert inserts the row for r.Date or overwrites profit, expense and total
	// of the existing one.
	Upsert(ctx context.Context, r entities.Revenue) error
	ListByDate(ctx context.Context, date string) ([]entities.Revenue, error)
}
