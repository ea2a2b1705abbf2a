package prompt

import (
	"fmt"
	"strings"

	"laundryops-bot/internal/entity"
	"laundryops-bot/pkg/rag/retriever"
)

// FaqSystem pins answer generation to the retrieved passages. The refusal
// instruction is what keeps the bot from inventing prices or policies.
const FaqSystem = `You are the customer assistant of a laundry pickup and delivery service.
Answer the customer's question using ONLY the context passages provided.
If the context does not contain the answer, say you don't have that information and suggest contacting support.
Never invent prices, timings, or policies. Keep answers short and friendly.`

// BuildFaqPrompt renders the user message for an FAQ answer.
func BuildFaqPrompt(question string, passages []retriever.Passage) string {
	var b strings.Builder
	b.WriteString("Context passages:\n")
	for i, p := range passages {
		fmt.Fprintf(&b, "--- Passage %d ---\n%s\n", i+1, p.Content)
	}
	fmt.Fprintf(&b, "\nCustomer question: %s\n\nAnswer using only the passages above.", question)
	return b.String()
}

// OrderSystem grounds a status answer in the order record.
const OrderSystem = `You are the customer assistant of a laundry pickup and delivery service.
Answer the customer's question about their order using ONLY the order details provided.
Do not invent details that are not in the record. Keep it to 2-3 friendly sentences.`

// BuildOrderPrompt renders the user message for a natural-language order
// status answer.
func BuildOrderPrompt(question string, order *entity.Order) string {
	var b strings.Builder
	b.WriteString("Order record:\n")
	fmt.Fprintf(&b, "Order number: %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)
	fmt.Fprintf(&b, "Service: %s\n", order.ServiceChoice)
	fmt.Fprintf(&b, "Weight: %.2f kg\n", order.TotalWeightKg)
	fmt.Fprintf(&b, "Total price: %.2f\n", order.TotalPrice)
	fmt.Fprintf(&b, "Delivery type: %s\n", order.DeliveryType)
	if order.OutletName != "" {
		fmt.Fprintf(&b, "Outlet: %s\n", order.OutletName)
	}
	fmt.Fprintf(&b, "Expected delivery: %s\n", order.DeliveryTime.Format("Mon, 02 Jan 2006 3:04 PM"))
	fmt.Fprintf(&b, "Placed at: %s\n", order.CreatedAt.Format("Mon, 02 Jan 2006 3:04 PM"))
	fmt.Fprintf(&b, "\nCustomer question: %s\n\nAnswer using only the record above.", question)
	return b.String()
}
