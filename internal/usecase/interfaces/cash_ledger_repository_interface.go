package interfaces

import (
	"context"
	"phone_repair/internal/domain/entities"
)

//go:generate mockgen -source=cash_ledger_repository_interface.go -destination=mocks/cash_ledger_repository_mock.go -package=mock_interfaces

type ICashLedgerRepository interface {
	Create(ctx context.Context, e entities.CashEntry) (entities.CashEntry, error)
	UpdateAmount(ctx context.Context, receiptNumber string, amount float64) (int64, error)
	Delete(ctx context.Context, receiptNumber string) (int64, error)
	List(ctx context.Context) ([]entities.CashEntry, error)
}
