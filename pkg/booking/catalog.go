package booking

import (
	"fmt"
	"math"
	"strings"
)

// Service choices offered in the dialogue. Each maps to one or more catalog
// services whose per-kg rates add up to the effective rate of the order.
const (
	ChoiceWashOnly  = "wash_only"
	ChoiceWashIron  = "wash_iron"
	ChoiceDryClean  = "dry_clean"
	ChoiceShoeClean = "shoe_clean"
)

// ServiceBundles maps a dialogue choice to catalog service names.
var ServiceBundles = map[string][]string{
	ChoiceWashOnly:  {"wash"},
	ChoiceWashIron:  {"wash", "iron"},
	ChoiceDryClean:  {"dry_clean"},
	ChoiceShoeClean: {"shoe_clean"},
}

// Catalog carries the per-kg rate of each catalog service, loaded from the
// services table once per message so the machine itself stays free of I/O.
type Catalog struct {
	Rates map[string]float64 // catalog service name -> rate per kg
}

// RatePerKg returns the effective per-kg rate of a service choice.
func (c Catalog) RatePerKg(choice string) float64 {
	var rate float64
	for _, name := range ServiceBundles[choice] {
		rate += c.Rates[name]
	}
	return rate
}

// Price computes the order total and the express fee portion.
func (c Catalog) Price(choice string, weightKg float64, deliveryType string, surcharge float64) (total, expressFee float64) {
	total = c.RatePerKg(choice) * weightKg
	if deliveryType == DeliveryExpress {
		expressFee = Round2(total * surcharge)
		total += expressFee
	}
	return Round2(total), expressFee
}

// Round2 rounds a price to two decimals. Shared with the persistence layer
// so rendered summaries and stored totals agree.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ChoiceLabel renders a service choice for user-facing messages.
func ChoiceLabel(choice string) string {
	parts := strings.Split(choice, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func formatPrice(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
