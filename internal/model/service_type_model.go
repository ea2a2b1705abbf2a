package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServiceName string    `gorm:"type:text;not null;uniqueIndex"`
	BasePrice   float64   `gorm:"not null"` // rate per kg
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ServiceType) TableName() string {
	return "services"
}
