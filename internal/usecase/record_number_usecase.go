package usecase

import (
	"context"
	"fmt"
	"phone_repair/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=record_number_usecase.go -destination=mocks/record_number_usecase_mock.go -package=mocks

// IRecordNumberUseCase hands out record numbers for new quotes.
type IRecordNumberUseCase interface {
	Next(ctx context.Context) (int64, error)
}

type RecordNumberUseCase struct {
	sequence interfaces.IRecordSequence
	logger   *zap.Logger
}

var _ IRecordNumberUseCase = (*RecordNumberUseCase)(nil)

func NewRecordNumberUseCase(sequence interfaces.IRecordSequence, logger *zap.Logger) *RecordNumberUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordNumberUseCase{sequence: sequence, logger: logger}
}

func (u *RecordNumberUseCase) Next(ctx context.Context) (int64, error) {
	n, err := u.sequence.Reserve(ctx)
	if err != nil {
		return 0, fmt.Errorf("reserve record number: %w", err)
	}
	u.logger.Debug("record number reserved", zap.Int64("record_number", n))
	return n, nil
}
