package booking

import (
	"fmt"
	"strings"

	"laundryops-bot/internal/entity"
)

// Delivery and pickup preferences carried on the draft and the final order.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
	PickupSelfDrop   = "self_drop"
	PickupHome       = "home_pickup"
)

// Policy carries the booking rules the machine enforces.
type Policy struct {
	ServicedCity     string
	ServicedAreas    []string // lowercased area names, loaded from service_areas
	DefaultWeightKg  float64
	ExpressSurcharge float64
	MinWeightKg      float64
	MaxWeightKg      float64
}

// Result is the outcome of feeding one message into the machine.
type Result struct {
	Stage     entity.Stage
	Draft     entity.DraftBooking
	Reply     string
	Completed bool // draft is fully collected and confirmed
	Cancelled bool
}

// Machine advances a booking conversation one message at a time. It holds no
// mutable state and does no I/O: callers load the session, feed the message
// through, persist the result.
type Machine struct {
	policy  Policy
	catalog Catalog
}

func NewMachine(policy Policy, catalog Catalog) *Machine {
	return &Machine{policy: policy, catalog: catalog}
}

// Start opens a new booking dialogue.
func (m *Machine) Start() Result {
	return Result{
		Stage: entity.StageAwaitingAddress,
		Reply: "Let's get your laundry picked up! 🧺\n\nFirst, what's your pickup <b>address</b>? Please include your area name.",
	}
}

// Next advances the dialogue. The incoming stage must be one of the booking
// stages; feeding StageIdle is a caller bug and returns a restart prompt.
func (m *Machine) Next(stage entity.Stage, draft entity.DraftBooking, input string) Result {
	text := strings.TrimSpace(input)
	lower := strings.ToLower(text)

	if isCancel(lower) {
		return Result{
			Stage:     entity.StageIdle,
			Cancelled: true,
			Reply:     "Booking cancelled. Send <b>book</b> whenever you're ready to start again.",
		}
	}

	switch stage {
	case entity.StageAwaitingAddress:
		return m.onAddress(draft, text, lower)
	case entity.StageAwaitingPhone:
		return m.onPhone(draft, text)
	case entity.StageAwaitingService:
		return m.onService(draft, lower)
	case entity.StageAwaitingWeightOrPiece:
		return m.onWeight(draft, text)
	case entity.StageAwaitingInstructions:
		return m.onInstructions(draft, text, lower)
	case entity.StageAwaitingConfirmation:
		return m.onConfirmation(draft, lower)
	default:
		return m.Start()
	}
}

const promptPhone = "Got it! 📍\n\nWhat's the best <b>phone number</b> to reach you on pickup day?"

func isCancel(lower string) bool {
	return lower == "cancel" || lower == "/cancel" || lower == "stop" || lower == "quit"
}

func isSkip(lower string) bool {
	switch lower {
	case "skip", "no", "none", "nope", "-", "n/a":
		return true
	}
	return false
}

func (m *Machine) onAddress(draft entity.DraftBooking, text, lower string) Result {
	if lower == "skip" {
		if draft.PendingAddress == "" {
			return Result{Stage: entity.StageAwaitingAddress, Draft: draft, Reply: "There's no address to skip to yet. Please send your pickup <b>address</b>."}
		}
		draft.Address = draft.PendingAddress
		draft.PendingAddress = ""
		return Result{Stage: entity.StageAwaitingPhone, Draft: draft, Reply: promptPhone}
	}
	if text == "" {
		return Result{Stage: entity.StageAwaitingAddress, Draft: draft, Reply: "Please send your pickup <b>address</b> including your area name."}
	}
	if !m.inServiceArea(lower) {
		draft.PendingAddress = text
		return Result{
			Stage: entity.StageAwaitingAddress,
			Draft: draft,
			Reply: fmt.Sprintf("Hmm, we currently serve <b>%s</b> only and I couldn't spot a known area in that address. Send a different address, or reply <b>skip</b> to use it anyway.", ChoiceLabel(m.policy.ServicedCity)),
		}
	}
	draft.Address = text
	draft.PendingAddress = ""
	return Result{Stage: entity.StageAwaitingPhone, Draft: draft, Reply: promptPhone}
}

func (m *Machine) inServiceArea(lowerAddr string) bool {
	if m.policy.ServicedCity != "" && strings.Contains(lowerAddr, m.policy.ServicedCity) {
		return true
	}
	for _, area := range m.policy.ServicedAreas {
		if area != "" && strings.Contains(lowerAddr, area) {
			return true
		}
	}
	return false
}

func (m *Machine) onPhone(draft entity.DraftBooking, text string) Result {
	digits := normalizePhone(text)
	if digits == "" {
		return Result{
			Stage: entity.StageAwaitingPhone,
			Draft: draft,
			Reply: "That doesn't look like a phone number. Please send a number with 8 to 13 digits, e.g. <b>9876543210</b>.",
		}
	}
	draft.Phone = digits
	return Result{Stage: entity.StageAwaitingService, Draft: draft, Reply: m.promptService()}
}

// normalizePhone strips separators and a leading +, returning the digit
// string when it is a plausible phone number and "" otherwise.
func normalizePhone(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "+")
	cleaned = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(cleaned)
	if len(cleaned) < 8 || len(cleaned) > 13 {
		return ""
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return cleaned
}

var serviceMenu = []string{ChoiceWashOnly, ChoiceWashIron, ChoiceDryClean, ChoiceShoeClean}

func (m *Machine) promptService() string {
	var b strings.Builder
	b.WriteString("Great! Which <b>service</b> would you like?\n\n")
	for i, choice := range serviceMenu {
		fmt.Fprintf(&b, "%d. %s — ₹%s/kg\n", i+1, ChoiceLabel(choice), formatPrice(m.catalog.RatePerKg(choice)))
	}
	b.WriteString("\nReply with a number or the service name.")
	return b.String()
}

func (m *Machine) onService(draft entity.DraftBooking, lower string) Result {
	choice := parseServiceChoice(lower)
	if choice == "" {
		return Result{Stage: entity.StageAwaitingService, Draft: draft, Reply: "I didn't catch that. " + m.promptService()}
	}
	draft.ServiceChoice = choice
	return Result{
		Stage: entity.StageAwaitingWeightOrPiece,
		Draft: draft,
		Reply: "How much laundry do you have?\n\nSend a <b>weight in kg</b> (e.g. <i>4.5</i>), garment counts (e.g. <i>5 shirts and 2 pants</i>), or just describe it and we'll weigh it at pickup.",
	}
}

func parseServiceChoice(lower string) string {
	switch strings.TrimSpace(lower) {
	case "1":
		return ChoiceWashOnly
	case "2":
		return ChoiceWashIron
	case "3":
		return ChoiceDryClean
	case "4":
		return ChoiceShoeClean
	}
	switch {
	case strings.Contains(lower, "dry"):
		return ChoiceDryClean
	case strings.Contains(lower, "shoe"), strings.Contains(lower, "sneaker"):
		return ChoiceShoeClean
	case strings.Contains(lower, "iron"), strings.Contains(lower, "press"):
		return ChoiceWashIron
	case strings.Contains(lower, "wash"), strings.Contains(lower, "laundry"):
		return ChoiceWashOnly
	}
	return ""
}

func (m *Machine) onWeight(draft entity.DraftBooking, text string) Result {
	kg, note, kind := ParseWeight(text, m.policy.MinWeightKg, m.policy.MaxWeightKg, m.policy.DefaultWeightKg)
	if kind == WeightInvalid {
		return Result{
			Stage: entity.StageAwaitingWeightOrPiece,
			Draft: draft,
			Reply: fmt.Sprintf("Please send a weight between <b>%s kg</b> and <b>%s kg</b>, garment counts, or a short description.", formatPrice(m.policy.MinWeightKg), formatPrice(m.policy.MaxWeightKg)),
		}
	}
	draft.WeightKg = kg
	draft.WeightNote = note
	return Result{
		Stage: entity.StageAwaitingInstructions,
		Draft: draft,
		Reply: "Any <b>special instructions</b>? (delicate items, stains, fragrance preferences...)\n\nReply <b>skip</b> if none.",
	}
}

func (m *Machine) onInstructions(draft entity.DraftBooking, text, lower string) Result {
	if !isSkip(lower) {
		draft.Instructions = text
	}
	if draft.DeliveryType == "" {
		draft.DeliveryType = DeliveryStandard
	}
	if draft.PickupType == "" {
		draft.PickupType = PickupSelfDrop
	}
	return Result{
		Stage: entity.StageAwaitingConfirmation,
		Draft: draft,
		Reply: m.summary(draft),
	}
}

func (m *Machine) onConfirmation(draft entity.DraftBooking, lower string) Result {
	switch {
	case isAffirmative(lower):
		return Result{Stage: entity.StageIdle, Draft: draft, Completed: true}
	case lower == "no" || lower == "n":
		return Result{
			Stage:     entity.StageIdle,
			Cancelled: true,
			Reply:     "No problem, I've discarded that booking. Send <b>book</b> to start over.",
		}
	case strings.Contains(lower, "express"):
		draft.DeliveryType = DeliveryExpress
		return Result{Stage: entity.StageAwaitingConfirmation, Draft: draft, Reply: "Switched to <b>express delivery</b>. 🚀\n\n" + m.summary(draft)}
	case strings.Contains(lower, "standard"), strings.Contains(lower, "normal"):
		draft.DeliveryType = DeliveryStandard
		return Result{Stage: entity.StageAwaitingConfirmation, Draft: draft, Reply: "Switched to <b>standard delivery</b>.\n\n" + m.summary(draft)}
	case strings.Contains(lower, "pickup"), strings.Contains(lower, "home"):
		draft.PickupType = PickupHome
		return Result{Stage: entity.StageAwaitingConfirmation, Draft: draft, Reply: "We'll <b>pick up from your address</b>. 🛵\n\n" + m.summary(draft)}
	case strings.Contains(lower, "drop"), strings.Contains(lower, "outlet"), strings.Contains(lower, "store"):
		draft.PickupType = PickupSelfDrop
		return Result{Stage: entity.StageAwaitingConfirmation, Draft: draft, Reply: "Noted, you'll <b>drop it off at the outlet</b>.\n\n" + m.summary(draft)}
	default:
		return Result{
			Stage: entity.StageAwaitingConfirmation,
			Draft: draft,
			Reply: "Reply <b>yes</b> to confirm or <b>no</b> to discard. You can also say <b>express</b>/<b>standard</b> or <b>pickup</b>/<b>drop</b> to adjust the booking.\n\n" + m.summary(draft),
		}
	}
}

func isAffirmative(lower string) bool {
	switch lower {
	case "yes", "y", "yeah", "yep", "confirm", "ok", "okay", "sure", "done", "👍":
		return true
	}
	return false
}

// summary renders the confirmation card for a fully collected draft.
func (m *Machine) summary(draft entity.DraftBooking) string {
	total, expressFee := m.catalog.Price(draft.ServiceChoice, draft.WeightKg, draft.DeliveryType, m.policy.ExpressSurcharge)

	var b strings.Builder
	b.WriteString("📋 <b>Booking Summary</b>\n\n")
	row(&b, "Service", ChoiceLabel(draft.ServiceChoice))
	if draft.WeightNote != "" {
		row(&b, "Weight", fmt.Sprintf("%s kg (%s)", formatPrice(draft.WeightKg), draft.WeightNote))
	} else {
		row(&b, "Weight", formatPrice(draft.WeightKg)+" kg")
	}
	row(&b, "Address", draft.Address)
	row(&b, "Phone", draft.Phone)
	row(&b, "Delivery", draft.DeliveryType)
	row(&b, "Handover", pickupLabel(draft.PickupType))
	if draft.Instructions != "" {
		row(&b, "Instructions", draft.Instructions)
	}
	if expressFee > 0 {
		row(&b, "Express fee", "₹"+formatPrice(expressFee))
	}
	fmt.Fprintf(&b, "\n💰 <b>Total: ₹%s</b>\n\nReply <b>yes</b> to confirm or <b>no</b> to discard.", formatPrice(total))
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": <b>")
	b.WriteString(value)
	b.WriteString("</b>\n")
}

func pickupLabel(pickupType string) string {
	if pickupType == PickupHome {
		return "home pickup"
	}
	return "self drop-off"
}
