package unitofwork

import (
	"context"

	"laundryops-bot/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() contract.CustomerRepository
	OrderRepository() contract.OrderRepository
	OutletRepository() contract.OutletRepository
	ServiceAreaRepository() contract.ServiceAreaRepository
	ServiceTypeRepository() contract.ServiceTypeRepository
	FaqDocumentRepository() contract.FaqDocumentRepository
}

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
