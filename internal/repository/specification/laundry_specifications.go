package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChatID filters customers by their chat identity.
type ByChatID struct {
	ChatID string
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

// ByOrderNumber filters orders by their human-readable code.
type ByOrderNumber struct {
	OrderNumber string
}

func (s ByOrderNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_number = ?", s.OrderNumber)
}

// ByCustomerID filters orders by owning customer.
type ByCustomerID struct {
	CustomerID uuid.UUID
}

func (s ByCustomerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

// ActiveOnly keeps rows whose is_active flag is set (outlets).
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByServiceNames filters the service catalog by a set of names.
type ByServiceNames struct {
	ServiceNames []string
}

func (s ByServiceNames) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_name IN ?", s.ServiceNames)
}
