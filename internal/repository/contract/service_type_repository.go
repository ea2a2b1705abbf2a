package contract

import (
	"context"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/specification"
)

type ServiceTypeRepository interface {
	Create(ctx context.Context, service *entity.ServiceType) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceType, error)
}
