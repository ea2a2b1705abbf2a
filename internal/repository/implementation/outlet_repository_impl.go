package implementation

import (
	"context"
	"errors"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/mapper"
	"laundryops-bot/internal/model"
	"laundryops-bot/internal/repository/contract"
	"laundryops-bot/internal/repository/specification"

	"gorm.io/gorm"
)

type OutletRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewOutletRepository(db *gorm.DB) contract.OutletRepository {
	return &OutletRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *OutletRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OutletRepositoryImpl) Create(ctx context.Context, outlet *entity.Outlet) error {
	m := r.mapper.OutletToModel(outlet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*outlet = *r.mapper.OutletToEntity(m)
	return nil
}

func (r *OutletRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Outlet, error) {
	var m model.Outlet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.OutletToEntity(&m), nil
}

func (r *OutletRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Outlet, error) {
	var models []*model.Outlet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Outlet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.OutletToEntity(m)
	}
	return entities, nil
}

type ServiceAreaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewServiceAreaRepository(db *gorm.DB) contract.ServiceAreaRepository {
	return &ServiceAreaRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *ServiceAreaRepositoryImpl) Create(ctx context.Context, area *entity.ServiceArea) error {
	m := r.mapper.ServiceAreaToModel(area)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*area = *r.mapper.ServiceAreaToEntity(m)
	return nil
}

func (r *ServiceAreaRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceArea, error) {
	var models []*model.ServiceArea
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ServiceArea, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ServiceAreaToEntity(m)
	}
	return entities, nil
}
