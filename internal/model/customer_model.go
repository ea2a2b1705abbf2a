package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId      string    `gorm:"type:text;uniqueIndex;not null"` // chat identity, one customer per chat
	FullName    string    `gorm:"type:text"`
	PhoneNumber string    `gorm:"type:text;index"`
	Address     string    `gorm:"type:text"`
	TotalOrders int       `gorm:"default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}
