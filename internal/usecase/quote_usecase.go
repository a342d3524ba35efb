package usecase

import (
	"context"
	"errors"
	"fmt"
	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrQuoteAlreadyExists  = errors.New("quote already exists")
	ErrInvalidRecordNumber = errors.New("invalid record number")
)

//go:generate mockgen -source=quote_usecase.go -destination=mocks/quote_usecase_mock.go -package=mocks

// IQuoteUseCase exposes the quote (orçamento) ledger.
//
// Quotes are write-once: there is no update or delete.
type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	logger *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, logger *zap.Logger) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{repo: repo, logger: logger}
}

// Create stores the quote together with the cash entry that books its amount.
// Both rows are written in one transaction; a duplicate record number leaves
// the existing quote and ledger untouched.
func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if q.RecordNumber <= 0 {
		return entities.Quote{}, ErrInvalidRecordNumber
	}
	q.CustomerName = entities.NormalizeName(q.CustomerName)

	created, err := u.repo.CreateWithCashEntry(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrUniqueViolation) {
			return entities.Quote{}, ErrQuoteAlreadyExists
		}
		return entities.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	u.logger.Info("quote created",
		zap.Int64("record_number", created.RecordNumber),
		zap.String("customer_name", created.CustomerName),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (u *QuoteUseCase) ListAll(ctx context.Context) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return quotes, nil
}

func (u *QuoteUseCase) GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Quote, error) {
	if recordNumber <= 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q, err := u.repo.GetByRecordNumber(ctx, recordNumber)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	if q.RecordNumber == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
