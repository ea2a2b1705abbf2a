package contract

import (
	"context"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ExistsByOrderNumber supports collision checks when generating codes.
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}
