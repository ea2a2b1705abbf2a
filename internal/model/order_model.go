package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string    `gorm:"type:text;uniqueIndex;not null"`
	CustomerId    uuid.UUID `gorm:"type:uuid;not null;index"`
	OutletId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceChoice string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:text;not null;default:'pending'"`
	RatePerKg     float64   `gorm:"not null"`
	TotalWeightKg float64   `gorm:"not null"`
	WeightNote    *string   `gorm:"type:text"`
	TotalPrice    float64   `gorm:"not null"`
	ExpressFee    float64   `gorm:"default:0"`
	DeliveryType  string    `gorm:"type:text;not null;default:'standard'"`
	PickupType    string    `gorm:"type:text;not null;default:'self_drop'"`
	Address       string    `gorm:"type:text"`
	Instructions  *string   `gorm:"type:text"`
	DeliveryTime  time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
