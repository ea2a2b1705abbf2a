package mapper

import (
	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/model"
)

// CatalogMapper converts the small read-mostly catalog models: outlets,
// serviced areas and service types.
type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) OutletToEntity(o *model.Outlet) *entity.Outlet {
	if o == nil {
		return nil
	}
	return &entity.Outlet{
		Id:         o.Id,
		OutletName: o.OutletName,
		IsActive:   o.IsActive,
		CreatedAt:  o.CreatedAt,
	}
}

func (m *CatalogMapper) OutletToModel(o *entity.Outlet) *model.Outlet {
	if o == nil {
		return nil
	}
	return &model.Outlet{
		Id:         o.Id,
		OutletName: o.OutletName,
		IsActive:   o.IsActive,
		CreatedAt:  o.CreatedAt,
	}
}

func (m *CatalogMapper) ServiceAreaToEntity(a *model.ServiceArea) *entity.ServiceArea {
	if a == nil {
		return nil
	}
	return &entity.ServiceArea{
		Id:       a.Id,
		AreaName: a.AreaName,
		OutletId: a.OutletId,
	}
}

func (m *CatalogMapper) ServiceAreaToModel(a *entity.ServiceArea) *model.ServiceArea {
	if a == nil {
		return nil
	}
	return &model.ServiceArea{
		Id:       a.Id,
		AreaName: a.AreaName,
		OutletId: a.OutletId,
	}
}

func (m *CatalogMapper) ServiceTypeToEntity(s *model.ServiceType) *entity.ServiceType {
	if s == nil {
		return nil
	}
	return &entity.ServiceType{
		Id:          s.Id,
		ServiceName: s.ServiceName,
		BasePrice:   s.BasePrice,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *CatalogMapper) ServiceTypeToModel(s *entity.ServiceType) *model.ServiceType {
	if s == nil {
		return nil
	}
	return &model.ServiceType{
		Id:          s.Id,
		ServiceName: s.ServiceName,
		BasePrice:   s.BasePrice,
		CreatedAt:   s.CreatedAt,
	}
}
