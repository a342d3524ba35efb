package usecase

import (
	"context"
	"errors"
	"testing"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase/interfaces"
	mock_interfaces "phone_repair/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCashLedgerUseCase_Create(t *testing.T) {
	t.Run("blank receipt", func(t *testing.T) {
		uc := NewCashLedgerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", 10, nil)
		if !errors.Is(err, ErrInvalidReceiptNumber) {
			t.Fatalf("expected ErrInvalidReceiptNumber, got %v", err)
		}
	})

	t.Run("duplicate receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICashLedgerRepository(ctrl)
		uc := NewCashLedgerUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CashEntry{}, interfaces.ErrUniqueViolation)

		_, err := uc.Create(context.Background(), "42", 10, nil)
		if !errors.Is(err, ErrCashEntryAlreadyExists) {
			t.Fatalf("expected ErrCashEntryAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICashLedgerRepository(ctrl)
		uc := NewCashLedgerUseCase(repo, nil)

		desc := "sinal"
		repo.EXPECT().Create(gomock.Any(), entities.CashEntry{ReceiptNumber: "42", Amount: 10, Description: &desc}).
			Return(entities.CashEntry{ID: 1, ReceiptNumber: "42", Amount: 10, Description: &desc}, nil)

		got, err := uc.Create(context.Background(), " 42 ", 10, &desc)
		if err != nil || got.ID != 1 {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})
}

func TestCashLedgerUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("update without match succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICashLedgerRepository(ctrl)
		uc := NewCashLedgerUseCase(repo, nil)

		repo.EXPECT().UpdateAmount(gomock.Any(), "7", 1.0).Return(int64(0), nil)

		if err := uc.Update(context.Background(), "7", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete without match succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICashLedgerRepository(ctrl)
		uc := NewCashLedgerUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "7").Return(int64(0), nil)

		if err := uc.Delete(context.Background(), "7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank receipt", func(t *testing.T) {
		uc := NewCashLedgerUseCase(nil, nil)
		if err := uc.Update(context.Background(), "", 1); !errors.Is(err, ErrInvalidReceiptNumber) {
			t.Fatalf("expected ErrInvalidReceiptNumber, got %v", err)
		}
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidReceiptNumber) {
			t.Fatalf("expected ErrInvalidReceiptNumber, got %v", err)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICashLedgerRepository(ctrl)
		uc := NewCashLedgerUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "7").Return(int64(0), errors.New("db"))

		if err := uc.Delete(context.Background(), "7"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
