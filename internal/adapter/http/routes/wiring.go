package routes

import (
	"context"
	"fmt"
	"phone_repair/internal/adapter/persistence/repository"
	"phone_repair/internal/infrastructure/config"
	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase"
	"phone_repair/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NewDependencies wires repositories and use cases on top of db. The record
// sequence lives in the same database unless cfg selects the DynamoDB backend.
func NewDependencies(ctx context.Context, cfg config.Config, db *database.DB, logger *zap.Logger) (Dependencies, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sequence, err := newRecordSequence(ctx, cfg, db, logger)
	if err != nil {
		return Dependencies{}, err
	}

	return Dependencies{
		Logger:        logger,
		Customers:     usecase.NewCustomerUseCase(repository.NewCustomerSQLRepository(db), logger),
		RecordNumbers: usecase.NewRecordNumberUseCase(sequence, logger),
		Quotes:        usecase.NewQuoteUseCase(repository.NewQuoteSQLRepository(db), logger),
		CashLedger:    usecase.NewCashLedgerUseCase(repository.NewCashLedgerSQLRepository(db), logger),
		Revenue:       usecase.NewRevenueUseCase(repository.NewRevenueSQLRepository(db), logger),
	}, nil
}

func newRecordSequence(ctx context.Context, cfg config.Config, db *database.DB, logger *zap.Logger) (interfaces.IRecordSequence, error) {
	switch cfg.SequenceBackend {
	case "", config.SequenceBackendSQL:
		return repository.NewRecordSequenceSQLRepository(db), nil
	case config.SequenceBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to dynamodb: %w", err)
		}
		logger.Info("record numbers reserved from dynamodb", zap.String("table", cfg.SequenceTable))
		return repository.NewRecordSequenceDynamoRepository(ddb, cfg.SequenceTable), nil
	default:
		return nil, fmt.Errorf("unknown record sequence backend %q", cfg.SequenceBackend)
	}
}
