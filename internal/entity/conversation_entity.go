package entity

import "time"

// Stage is the position of a chat inside the booking dialogue.
type Stage string

const (
	StageIdle                  Stage = "idle"
	StageAwaitingAddress       Stage = "awaiting_address"
	StageAwaitingPhone         Stage = "awaiting_phone"
	StageAwaitingService       Stage = "awaiting_service"
	StageAwaitingWeightOrPiece Stage = "awaiting_weight_or_pieces"
	StageAwaitingInstructions  Stage = "awaiting_instructions"
	StageAwaitingConfirmation  Stage = "awaiting_confirmation"
)

// DraftBooking is the partially collected booking held while a dialogue is in
// progress. Empty iff the stage is idle.
type DraftBooking struct {
	Address string `json:"address,omitempty"`
	// PendingAddress remembers an address that failed the serviced-city check
	// so a follow-up "skip" can accept it anyway.
	PendingAddress string  `json:"pending_address,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	ServiceChoice  string  `json:"service_choice,omitempty"`
	WeightKg       float64 `json:"weight_kg,omitempty"`
	WeightNote     string  `json:"weight_note,omitempty"`
	Instructions   string  `json:"instructions,omitempty"`
	DeliveryType   string  `json:"delivery_type,omitempty"` // "standard" | "express"
	PickupType     string  `json:"pickup_type,omitempty"`   // "self_drop" | "home_pickup"
}

func (d DraftBooking) IsEmpty() bool {
	return d == DraftBooking{}
}

// ConversationState is the per-chat dialogue state, keyed by chat identity.
type ConversationState struct {
	ChatID       string       `json:"chat_id"`
	Stage        Stage        `json:"stage"`
	Draft        DraftBooking `json:"draft"`
	LastActivity time.Time    `json:"last_activity"`
}

// NewIdleState returns the state every unseen chat identity starts in.
func NewIdleState(chatID string) *ConversationState {
	return &ConversationState{
		ChatID:       chatID,
		Stage:        StageIdle,
		LastActivity: time.Now(),
	}
}
