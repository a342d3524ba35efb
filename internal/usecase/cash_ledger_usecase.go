package usecase

import (
	"context"
	"errors"
	"fmt"
	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrCashEntryAlreadyExists = errors.New("cash entry already exists")
	ErrInvalidReceiptNumber   = errors.New("invalid receipt number")
)

//go:generate mockgen -source=cash_ledger_usecase.go -destination=mocks/cash_ledger_usecase_mock.go -package=mocks

// ICashLedgerUseCase exposes the cash ledger (caixa).
//
// Update and Delete report success even when no entry has the receipt number.
type ICashLedgerUseCase interface {
	Create(ctx context.Context, receiptNumber string, amount float64, description *string) (entities.CashEntry, error)
	Update(ctx context.Context, receiptNumber string, amount float64) error
	Delete(ctx context.Context, receiptNumber string) error
	ListAll(ctx context.Context) ([]entities.CashEntry, error)
}

type CashLedgerUseCase struct {
	repo   interfaces.ICashLedgerRepository
	logger *zap.Logger
}

var _ ICashLedgerUseCase = (*CashLedgerUseCase)(nil)

func NewCashLedgerUseCase(repo interfaces.ICashLedgerRepository, logger *zap.Logger) *CashLedgerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CashLedgerUseCase{repo: repo, logger: logger}
}

func (u *CashLedgerUseCase) Create(ctx context.Context, receiptNumber string, amount float64, description *string) (entities.CashEntry, error) {
	receiptNumber = strings.TrimSpace(receiptNumber)
	if receiptNumber == "" {
		return entities.CashEntry{}, ErrInvalidReceiptNumber
	}

	created, err := u.repo.Create(ctx, entities.CashEntry{
		ReceiptNumber: receiptNumber,
		Amount:        amount,
		Description:   description,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrUniqueViolation) {
			return entities.CashEntry{}, ErrCashEntryAlreadyExists
		}
		return entities.CashEntry{}, fmt.Errorf("create cash entry: %w", err)
	}
	u.logger.Info("cash entry created", zap.String("receipt_number", receiptNumber), zap.Float64("amount", amount))
	return created, nil
}

func (u *CashLedgerUseCase) Update(ctx context.Context, receiptNumber string, amount float64) error {
	receiptNumber = strings.TrimSpace(receiptNumber)
	if receiptNumber == "" {
		return ErrInvalidReceiptNumber
	}

	updated, err := u.repo.UpdateAmount(ctx, receiptNumber, amount)
	if err != nil {
		return fmt.Errorf("update cash entry: %w", err)
	}
	u.logger.Info("cash entry updated",
		zap.String("receipt_number", receiptNumber),
		zap.Float64("amount", amount),
		zap.Int64("rows", updated),
	)
	return nil
}

func (u *CashLedgerUseCase) Delete(ctx context.Context, receiptNumber string) error {
	receiptNumber = strings.TrimSpace(receiptNumber)
	if receiptNumber == "" {
		return ErrInvalidReceiptNumber
	}

	deleted, err := u.repo.Delete(ctx, receiptNumber)
	if err != nil {
		return fmt.Errorf("delete cash entry: %w", err)
	}
	u.logger.Info("cash entry deleted", zap.String("receipt_number", receiptNumber), zap.Int64("rows", deleted))
	return nil
}

func (u *CashLedgerUseCase) ListAll(ctx context.Context) ([]entities.CashEntry, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cash entries: %w", err)
	}
	if entries == nil {
		entries = []entities.CashEntry{}
	}
	return entries, nil
}
