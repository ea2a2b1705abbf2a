package mapper

import (
	"time"

	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/model"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Customer{
		Id:          c.Id,
		ChatID:      c.ChatId,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		TotalOrders: c.TotalOrders,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Customer{
		Id:          c.Id,
		ChatId:      c.ChatID,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		TotalOrders: c.TotalOrders,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
