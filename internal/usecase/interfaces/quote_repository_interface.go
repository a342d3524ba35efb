package interfaces

import (
	"context"
	"phone_repair/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository abstracts SQL persistence for Quote.
//
// CreateWithCashEntry stores the quote and its cash ledger entry atomically.
type IQuoteRepository interface {
	CreateWithCashEntry(ctx context.Context, q entities.Quote) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	// GetByRecordNumber returns the zero Quote when nothing matches.
	GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Quote, error)
}
