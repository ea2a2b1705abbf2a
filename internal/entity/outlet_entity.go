package entity

import (
	"time"

	"github.com/google/uuid"
)

type Outlet struct {
	Id         uuid.UUID
	OutletName string
	IsActive   bool
	CreatedAt  time.Time
}

// ServiceArea links a serviced neighbourhood name to its assigned outlet.
type ServiceArea struct {
	Id       uuid.UUID
	AreaName string
	OutletId *uuid.UUID
}
