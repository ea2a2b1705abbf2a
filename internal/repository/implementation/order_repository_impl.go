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

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.Id = m.Id
	order.CreatedAt = m.CreatedAt
	return nil
}

// orderRow carries the outlet name joined onto the order row.
type orderRow struct {
	model.Order
	OutletName string
}

func (r *OrderRepositoryImpl) readQuery(ctx context.Context, specs ...specification.Specification) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("orders.*, outlets.outlet_name AS outlet_name").
		Joins("LEFT JOIN outlets ON outlets.id = orders.outlet_id")
	return r.applySpecifications(query, specs...)
}

func (r *OrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var row orderRow
	if err := r.readQuery(ctx, specs...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	e := r.mapper.ToEntity(&row.Order)
	e.OutletName = row.OutletName
	return e, nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var rows []*orderRow
	if err := r.readQuery(ctx, specs...).Find(&rows).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Order, len(rows))
	for i, row := range rows {
		entities[i] = r.mapper.ToEntity(&row.Order)
		entities[i].OutletName = row.OutletName
	}
	return entities, nil
}

func (r *OrderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Order{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderRepositoryImpl) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
