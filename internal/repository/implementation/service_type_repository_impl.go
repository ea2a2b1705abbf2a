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

type ServiceTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewServiceTypeRepository(db *gorm.DB) contract.ServiceTypeRepository {
	return &ServiceTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *ServiceTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceTypeRepositoryImpl) Create(ctx context.Context, service *entity.ServiceType) error {
	m := r.mapper.ServiceTypeToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceTypeToEntity(m)
	return nil
}

func (r *ServiceTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceType, error) {
	var m model.ServiceType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ServiceTypeToEntity(&m), nil
}

func (r *ServiceTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceType, error) {
	var models []*model.ServiceType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ServiceType, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ServiceTypeToEntity(m)
	}
	return entities, nil
}
