package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id          uuid.UUID
	ChatID      string
	FullName    string
	PhoneNumber string
	Address     string
	TotalOrders int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
