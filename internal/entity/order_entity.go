package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus lifecycle. Created as pending by the booking flow; mutated
// afterwards only by operational systems outside this service.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	Id            uuid.UUID
	OrderNumber   string
	CustomerId    uuid.UUID
	OutletId      uuid.UUID
	ServiceChoice string // "wash_only" | "wash_iron" | "dry_clean" | "shoe_clean"
	Status        OrderStatus
	RatePerKg     float64
	TotalWeightKg float64
	WeightNote    *string
	TotalPrice    float64
	ExpressFee    float64
	DeliveryType  string // "standard" | "express"
	PickupType    string // "self_drop" | "home_pickup"
	Address       string
	Instructions  *string
	DeliveryTime  time.Time
	CreatedAt     time.Time

	// OutletName is populated on reads that join the outlet, for rendering.
	OutletName string
}
