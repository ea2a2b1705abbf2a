package booking

import (
	"strings"
	"testing"

	"laundryops-bot/internal/entity"
)

func testMachine() *Machine {
	return NewMachine(
		Policy{
			ServicedCity:     "pune",
			ServicedAreas:    []string{"kothrud", "baner", "aundh"},
			DefaultWeightKg:  3.0,
			ExpressSurcharge: 0.30,
			MinWeightKg:      0.5,
			MaxWeightKg:      100.0,
		},
		Catalog{Rates: map[string]float64{
			"wash":       50,
			"iron":       30,
			"dry_clean":  120,
			"shoe_clean": 150,
		}},
	)
}

func TestMachineHappyPath(t *testing.T) {
	m := testMachine()

	res := m.Start()
	if res.Stage != entity.StageAwaitingAddress {
		t.Fatalf("Start stage = %s, want %s", res.Stage, entity.StageAwaitingAddress)
	}

	res = m.Next(res.Stage, res.Draft, "12 MG Road, Kothrud, Pune")
	if res.Stage != entity.StageAwaitingPhone {
		t.Fatalf("after address stage = %s, want %s", res.Stage, entity.StageAwaitingPhone)
	}
	if res.Draft.Address == "" {
		t.Fatal("address not captured")
	}

	res = m.Next(res.Stage, res.Draft, "+91 98765-43210")
	if res.Stage != entity.StageAwaitingService {
		t.Fatalf("after phone stage = %s, want %s", res.Stage, entity.StageAwaitingService)
	}
	if res.Draft.Phone != "919876543210" {
		t.Fatalf("phone = %q, want normalized digits", res.Draft.Phone)
	}

	res = m.Next(res.Stage, res.Draft, "2")
	if res.Stage != entity.StageAwaitingWeightOrPiece {
		t.Fatalf("after service stage = %s, want %s", res.Stage, entity.StageAwaitingWeightOrPiece)
	}
	if res.Draft.ServiceChoice != ChoiceWashIron {
		t.Fatalf("service = %q, want %q", res.Draft.ServiceChoice, ChoiceWashIron)
	}

	res = m.Next(res.Stage, res.Draft, "4 kg")
	if res.Stage != entity.StageAwaitingInstructions {
		t.Fatalf("after weight stage = %s, want %s", res.Stage, entity.StageAwaitingInstructions)
	}

	res = m.Next(res.Stage, res.Draft, "skip")
	if res.Stage != entity.StageAwaitingConfirmation {
		t.Fatalf("after instructions stage = %s, want %s", res.Stage, entity.StageAwaitingConfirmation)
	}
	if res.Draft.DeliveryType != DeliveryStandard || res.Draft.PickupType != PickupSelfDrop {
		t.Fatalf("defaults not applied: %+v", res.Draft)
	}
	// wash_iron = 80/kg, 4 kg => 320
	if !strings.Contains(res.Reply, "₹320") {
		t.Fatalf("summary missing total: %q", res.Reply)
	}

	res = m.Next(res.Stage, res.Draft, "yes")
	if !res.Completed {
		t.Fatal("confirmation did not complete the booking")
	}
	if res.Stage != entity.StageIdle {
		t.Fatalf("completed stage = %s, want idle", res.Stage)
	}
}

func TestMachineSelfLoops(t *testing.T) {
	m := testMachine()

	tests := []struct {
		name  string
		stage entity.Stage
		draft entity.DraftBooking
		input string
	}{
		{"unserviced address", entity.StageAwaitingAddress, entity.DraftBooking{}, "44 Park Street, Mumbai"},
		{"bad phone", entity.StageAwaitingPhone, entity.DraftBooking{Address: "kothrud"}, "call me maybe"},
		{"short phone", entity.StageAwaitingPhone, entity.DraftBooking{Address: "kothrud"}, "12345"},
		{"unknown service", entity.StageAwaitingService, entity.DraftBooking{}, "fold my socks"},
		{"weight out of range", entity.StageAwaitingWeightOrPiece, entity.DraftBooking{}, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Next(tt.stage, tt.draft, tt.input)
			if res.Stage != tt.stage {
				t.Errorf("stage = %s, want self-loop on %s", res.Stage, tt.stage)
			}
			if res.Completed || res.Cancelled {
				t.Errorf("self-loop must not complete or cancel: %+v", res)
			}
			if res.Reply == "" {
				t.Error("self-loop must re-prompt")
			}
		})
	}
}

func TestMachineCancelFromAnyStage(t *testing.T) {
	m := testMachine()
	stages := []entity.Stage{
		entity.StageAwaitingAddress,
		entity.StageAwaitingPhone,
		entity.StageAwaitingService,
		entity.StageAwaitingWeightOrPiece,
		entity.StageAwaitingInstructions,
		entity.StageAwaitingConfirmation,
	}

	for _, stage := range stages {
		res := m.Next(stage, entity.DraftBooking{Address: "x"}, "cancel")
		if !res.Cancelled {
			t.Errorf("cancel at %s not honored", stage)
		}
		if res.Stage != entity.StageIdle {
			t.Errorf("cancel at %s left stage %s", stage, res.Stage)
		}
		if !res.Draft.IsEmpty() {
			t.Errorf("cancel at %s kept draft %+v", stage, res.Draft)
		}
	}
}

func TestMachineSkipAcceptsPendingAddress(t *testing.T) {
	m := testMachine()

	res := m.Next(entity.StageAwaitingAddress, entity.DraftBooking{}, "Villa 3, Lonavala hills")
	if res.Stage != entity.StageAwaitingAddress {
		t.Fatalf("out-of-area address advanced to %s", res.Stage)
	}
	if res.Draft.PendingAddress != "Villa 3, Lonavala hills" {
		t.Fatalf("pending address = %q", res.Draft.PendingAddress)
	}

	res = m.Next(res.Stage, res.Draft, "skip")
	if res.Stage != entity.StageAwaitingPhone {
		t.Fatalf("skip did not accept pending address, stage = %s", res.Stage)
	}
	if res.Draft.Address != "Villa 3, Lonavala hills" {
		t.Fatalf("address = %q", res.Draft.Address)
	}
	if res.Draft.PendingAddress != "" {
		t.Fatal("pending address not cleared")
	}
}

func TestMachineSkipWithoutPendingReprompts(t *testing.T) {
	m := testMachine()
	res := m.Next(entity.StageAwaitingAddress, entity.DraftBooking{}, "skip")
	if res.Stage != entity.StageAwaitingAddress {
		t.Fatalf("skip with no pending address advanced to %s", res.Stage)
	}
}

func TestParseServiceChoice(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", ChoiceWashOnly},
		{"4", ChoiceShoeClean},
		{"dry cleaning please", ChoiceDryClean},
		{"wash and iron", ChoiceWashIron},
		{"just a wash", ChoiceWashOnly},
		{"clean my sneakers", ChoiceShoeClean},
		{"haircut", ""},
	}

	for _, tt := range tests {
		if got := parseServiceChoice(tt.input); got != tt.want {
			t.Errorf("parseServiceChoice(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConfirmationModifiers(t *testing.T) {
	m := testMachine()
	draft := entity.DraftBooking{
		Address:       "kothrud",
		Phone:         "9876543210",
		ServiceChoice: ChoiceWashOnly,
		WeightKg:      4,
		DeliveryType:  DeliveryStandard,
		PickupType:    PickupSelfDrop,
	}

	res := m.Next(entity.StageAwaitingConfirmation, draft, "express")
	if res.Stage != entity.StageAwaitingConfirmation {
		t.Fatalf("modifier left confirmation stage: %s", res.Stage)
	}
	if res.Draft.DeliveryType != DeliveryExpress {
		t.Fatalf("delivery = %q, want express", res.Draft.DeliveryType)
	}
	// wash 50/kg * 4 = 200, +30% = 260
	if !strings.Contains(res.Reply, "₹260") {
		t.Fatalf("express summary missing surcharged total: %q", res.Reply)
	}

	res = m.Next(res.Stage, res.Draft, "home pickup")
	if res.Draft.PickupType != PickupHome {
		t.Fatalf("pickup = %q, want home", res.Draft.PickupType)
	}

	res = m.Next(res.Stage, res.Draft, "standard")
	if res.Draft.DeliveryType != DeliveryStandard {
		t.Fatalf("delivery = %q, want standard", res.Draft.DeliveryType)
	}

	res = m.Next(res.Stage, res.Draft, "gibberish")
	if res.Stage != entity.StageAwaitingConfirmation || res.Completed || res.Cancelled {
		t.Fatalf("unknown confirmation input must re-prompt: %+v", res)
	}

	res = m.Next(res.Stage, res.Draft, "no")
	if !res.Cancelled {
		t.Fatal("no at confirmation must discard")
	}
}

func TestCatalogPrice(t *testing.T) {
	c := Catalog{Rates: map[string]float64{"wash": 50, "iron": 30, "dry_clean": 120}}

	total, fee := c.Price(ChoiceWashIron, 3, DeliveryStandard, 0.30)
	if total != 240 || fee != 0 {
		t.Fatalf("standard price = %v (fee %v), want 240 (0)", total, fee)
	}

	total, fee = c.Price(ChoiceDryClean, 2, DeliveryExpress, 0.30)
	if fee != 72 {
		t.Fatalf("express fee = %v, want 72", fee)
	}
	if total != 312 {
		t.Fatalf("express total = %v, want 312", total)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{320, 320},
		{106.666, 106.67},
		{41.234, 41.23},
		{0.005, 0.01},
		{0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
