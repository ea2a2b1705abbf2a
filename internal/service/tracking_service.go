package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/pkg/apperror"
	"laundryops-bot/internal/repository/specification"
	"laundryops-bot/internal/repository/unitofwork"
)

type ITrackingService interface {
	// FindOrderByCode looks an order up by its ORD- code, case-insensitively.
	FindOrderByCode(ctx context.Context, code string) (*entity.Order, error)

	// FindLatestOrderByChatID returns the chat's most recent order, or
	// apperror.ErrNoLinkedOrder when the chat has none.
	FindLatestOrderByChatID(ctx context.Context, chatID string) (*entity.Order, error)

	// FindOrCreateCustomer resolves the customer record for a chat identity,
	// creating a bare one on first contact.
	FindOrCreateCustomer(ctx context.Context, chatID, fullName string) (*entity.Customer, error)
}

type trackingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTrackingService(uowFactory unitofwork.RepositoryFactory) ITrackingService {
	return &trackingService{uowFactory: uowFactory}
}

func (s *trackingService) FindOrderByCode(ctx context.Context, code string) (*entity.Order, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByOrderNumber{
		OrderNumber: strings.ToUpper(strings.TrimSpace(code)),
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}
	return order, nil
}

func (s *trackingService) FindLatestOrderByChatID(ctx context.Context, chatID string) (*entity.Order, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByChatID{ChatID: chatID})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.ErrNoLinkedOrder
	}

	// Most recent first; id breaks created_at ties deterministically. Columns
	// are qualified because order reads join the outlet.
	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: customer.Id},
		specification.OrderBy{Field: "orders.created_at", Desc: true},
		specification.OrderBy{Field: "orders.id", Desc: true},
		specification.Pagination{Limit: 1},
	)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperror.ErrNoLinkedOrder
	}
	return orders[0], nil
}

func (s *trackingService) FindOrCreateCustomer(ctx context.Context, chatID, fullName string) (*entity.Customer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return findOrCreateCustomer(ctx, uow, chatID, fullName)
}

// findOrCreateCustomer is shared with the booking completion transaction.
func findOrCreateCustomer(ctx context.Context, uow unitofwork.UnitOfWork, chatID, fullName string) (*entity.Customer, error) {
	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByChatID{ChatID: chatID})
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	customer = &entity.Customer{
		Id:        uuid.New(),
		ChatID:    chatID,
		FullName:  fullName,
		CreatedAt: time.Now(),
	}
	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
