package contract

import (
	"context"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/specification"
)

type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Outlet, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Outlet, error)
}

type ServiceAreaRepository interface {
	Create(ctx context.Context, area *entity.ServiceArea) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceArea, error)
}
