package interfaces

import (
	"context"
	"phone_repair/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_mock.go -package=mock_interfaces

// ICustomerRepository abstracts SQL persistence for Customer.
//
// Lookups take a name lookup key (see entities.NameLookupKey), never a raw name.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	// FindByNameKey returns the zero Customer when nothing matches.
	FindByNameKey(ctx context.Context, key string) (entities.Customer, error)
	DeleteByNameKey(ctx context.Context, key string) (int64, error)
}
