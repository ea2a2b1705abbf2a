package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType is one entry of the laundry service catalog. BasePrice is the
// per-kilogram rate of this service.
type ServiceType struct {
	Id          uuid.UUID
	ServiceName string // "wash" | "iron" | "dry_clean" | "shoe_clean"
	BasePrice   float64
	CreatedAt   time.Time
}
