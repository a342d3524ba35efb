package usecase

import (
	"context"
	"errors"
	"fmt"
	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrRevenueDateRequired = errors.New("revenue date is required")

// RevenueInput carries the optional fields of a revenue write. Nil means "use the default".
type RevenueInput struct {
	Profit  *float64
	Expense *float64
	Total   *float64
	Date    *string
}

//go:generate mockgen -source=revenue_usecase.go -destination=mocks/revenue_usecase_mock.go -package=mocks

// IRevenueUseCase exposes the daily revenue summary (faturamento).
type IRevenueUseCase interface {
	Record(ctx context.Context, in RevenueInput) (entities.Revenue, error)
	Query(ctx context.Context, date string) ([]entities.Revenue, error)
}

type RevenueUseCase struct {
	repo   interfaces.IRevenueRepository
	logger *zap.Logger
	now    func() time.Time
}

var _ IRevenueUseCase = (*RevenueUseCase)(nil)

func NewRevenueUseCase(repo interfaces.IRevenueRepository, logger *zap.Logger) *RevenueUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RevenueUseCase{repo: repo, logger: logger, now: time.Now}
}

// Record writes the summary of one day. Profit and expense default to zero,
// total to profit - expense and date to today. The returned value holds the
// effective fields that were written.
func (u *RevenueUseCase) Record(ctx context.Context, in RevenueInput) (entities.Revenue, error) {
	r := entities.Revenue{
		Profit:  valueOr(in.Profit, 0),
		Expense: valueOr(in.Expense, 0),
	}
	r.Total = valueOr(in.Total, netTotal(r.Profit, r.Expense))

	if in.Date != nil && strings.TrimSpace(*in.Date) != "" {
		r.Date = strings.TrimSpace(*in.Date)
	} else {
		r.Date = u.now().Format(entities.RevenueDateLayout)
	}

	if err := u.repo.Upsert(ctx, r); err != nil {
		return entities.Revenue{}, fmt.Errorf("record revenue: %w", err)
	}
	u.logger.Info("revenue recorded",
		zap.String("date", r.Date),
		zap.Float64("profit", r.Profit),
		zap.Float64("expense", r.Expense),
		zap.Float64("total", r.Total),
	)
	return r, nil
}

func (u *RevenueUseCase) Query(ctx context.Context, date string) ([]entities.Revenue, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, ErrRevenueDateRequired
	}

	rows, err := u.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	if rows == nil {
		rows = []entities.Revenue{}
	}
	return rows, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// netTotal subtracts in decimal so 0.3 - 0.1 is stored as 0.2.
func netTotal(profit, expense float64) float64 {
	return decimal.NewFromFloat(profit).Sub(decimal.NewFromFloat(expense)).InexactFloat64()
}
