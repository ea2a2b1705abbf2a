package model

import (
	"time"

	"github.com/google/uuid"
)

type Outlet struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OutletName string    `gorm:"type:text;not null"`
	IsActive   bool      `gorm:"default:true;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Outlet) TableName() string {
	return "outlets"
}

type ServiceArea struct {
	Id       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AreaName string     `gorm:"type:text;not null;uniqueIndex"`
	OutletId *uuid.UUID `gorm:"type:uuid;index"`
}

func (ServiceArea) TableName() string {
	return "service_areas"
}
