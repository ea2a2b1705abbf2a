package mapper

import (
	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	return &entity.Order{
		Id:            o.Id,
		OrderNumber:   o.OrderNumber,
		CustomerId:    o.CustomerId,
		OutletId:      o.OutletId,
		ServiceChoice: o.ServiceChoice,
		Status:        entity.OrderStatus(o.Status),
		RatePerKg:     o.RatePerKg,
		TotalWeightKg: o.TotalWeightKg,
		WeightNote:    o.WeightNote,
		TotalPrice:    o.TotalPrice,
		ExpressFee:    o.ExpressFee,
		DeliveryType:  o.DeliveryType,
		PickupType:    o.PickupType,
		Address:       o.Address,
		Instructions:  o.Instructions,
		DeliveryTime:  o.DeliveryTime,
		CreatedAt:     o.CreatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	return &model.Order{
		Id:            o.Id,
		OrderNumber:   o.OrderNumber,
		CustomerId:    o.CustomerId,
		OutletId:      o.OutletId,
		ServiceChoice: o.ServiceChoice,
		Status:        string(o.Status),
		RatePerKg:     o.RatePerKg,
		TotalWeightKg: o.TotalWeightKg,
		WeightNote:    o.WeightNote,
		TotalPrice:    o.TotalPrice,
		ExpressFee:    o.ExpressFee,
		DeliveryType:  o.DeliveryType,
		PickupType:    o.PickupType,
		Address:       o.Address,
		Instructions:  o.Instructions,
		DeliveryTime:  o.DeliveryTime,
		CreatedAt:     o.CreatedAt,
	}
}
