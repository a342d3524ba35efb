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
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerName = errors.New("invalid customer name")
)

//go:generate mockgen -source=customer_usecase.go -destination=mocks/customer_usecase_mock.go -package=mocks

// ICustomerUseCase exposes the customer registry operations.
type ICustomerUseCase interface {
	Register(ctx context.Context, c entities.Customer) (entities.Customer, error)
	ListAll(ctx context.Context) ([]entities.Customer, error)
	FindByName(ctx context.Context, name string) (entities.Customer, error)
	DeleteByName(ctx context.Context, name string) error
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *CustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerUseCase{repo: repo, logger: logger}
}

// Register stores a new customer. Only the name is normalized; every other
// field is kept as received. Duplicate names are accepted.
func (u *CustomerUseCase) Register(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = entities.NormalizeName(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	u.logger.Info("customer registered", zap.Int64("customer_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (u *CustomerUseCase) ListAll(ctx context.Context) ([]entities.Customer, error) {
	customers, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if customers == nil {
		customers = []entities.Customer{}
	}
	return customers, nil
}

// FindByName returns the first customer whose name matches ignoring case and whitespace.
func (u *CustomerUseCase) FindByName(ctx context.Context, name string) (entities.Customer, error) {
	key, err := lookupKey(name)
	if err != nil {
		return entities.Customer{}, err
	}

	c, err := u.repo.FindByNameKey(ctx, key)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// DeleteByName removes every customer matching name.
func (u *CustomerUseCase) DeleteByName(ctx context.Context, name string) error {
	key, err := lookupKey(name)
	if err != nil {
		return err
	}

	deleted, err := u.repo.DeleteByNameKey(ctx, key)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if deleted == 0 {
		return ErrCustomerNotFound
	}
	u.logger.Info("customers deleted", zap.String("name_key", key), zap.Int64("deleted", deleted))
	return nil
}

func lookupKey(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidCustomerName
	}
	return entities.NameLookupKey(name), nil
}
