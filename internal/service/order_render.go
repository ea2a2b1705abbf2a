package service

import (
	"fmt"
	"strings"

	"laundryops-bot/internal/entity"
	"laundryops-bot/pkg/booking"
)

var statusEmoji = map[entity.OrderStatus]string{
	entity.OrderStatusPending:    "🕐",
	entity.OrderStatusInProgress: "🧼",
	entity.OrderStatusReady:      "✅",
	entity.OrderStatusDelivered:  "📦",
	entity.OrderStatusCancelled:  "❌",
}

// RenderOrderCard renders the tracking card for an order. Also the fallback
// reply when grounded generation fails.
func RenderOrderCard(order *entity.Order) string {
	emoji := statusEmoji[order.Status]
	if emoji == "" {
		emoji = "🔎"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>Order %s</b>\n\n", emoji, order.OrderNumber)
	fmt.Fprintf(&b, "Status: <b>%s</b>\n", strings.ReplaceAll(string(order.Status), "_", " "))
	fmt.Fprintf(&b, "Service: <b>%s</b>\n", booking.ChoiceLabel(order.ServiceChoice))
	fmt.Fprintf(&b, "Weight: <b>%.2f kg</b>\n", order.TotalWeightKg)
	if order.OutletName != "" {
		fmt.Fprintf(&b, "Outlet: <b>%s</b>\n", order.OutletName)
	}
	fmt.Fprintf(&b, "Delivery: <b>%s</b>\n", order.DeliveryType)
	fmt.Fprintf(&b, "Expected by: <b>%s</b>\n", order.DeliveryTime.Format("Mon, 02 Jan 3:04 PM"))
	fmt.Fprintf(&b, "\n💰 Total: <b>₹%.2f</b>", order.TotalPrice)
	return b.String()
}

// RenderBookingConfirmation is the reply after an order is created.
func RenderBookingConfirmation(order *entity.Order) string {
	var b strings.Builder
	b.WriteString("🎉 <b>Booking confirmed!</b>\n\n")
	fmt.Fprintf(&b, "Order code: <b>%s</b>\n", order.OrderNumber)
	fmt.Fprintf(&b, "Service: <b>%s</b>\n", booking.ChoiceLabel(order.ServiceChoice))
	if order.OutletName != "" {
		fmt.Fprintf(&b, "Outlet: <b>%s</b>\n", order.OutletName)
	}
	fmt.Fprintf(&b, "Expected delivery: <b>%s</b>\n", order.DeliveryTime.Format("Mon, 02 Jan 3:04 PM"))
	fmt.Fprintf(&b, "Total: <b>₹%.2f</b>\n", order.TotalPrice)
	b.WriteString("\nKeep the order code handy to track your laundry anytime. 🧺")
	return b.String()
}

// RenderPricingTable renders the catalog rates without a model call.
func RenderPricingTable(catalog booking.Catalog, expressSurcharge float64) string {
	var b strings.Builder
	b.WriteString("💰 <b>Our Rates</b> (per kg)\n\n")
	for _, choice := range []string{booking.ChoiceWashOnly, booking.ChoiceWashIron, booking.ChoiceDryClean, booking.ChoiceShoeClean} {
		fmt.Fprintf(&b, "• %s — <b>₹%.0f</b>\n", booking.ChoiceLabel(choice), catalog.RatePerKg(choice))
	}
	fmt.Fprintf(&b, "\nExpress delivery adds %.0f%% and halves the turnaround. Send <b>book</b> to get started!", expressSurcharge*100)
	return b.String()
}
