package constant

// Intent keyword sets, checked against the lowercased message. Order-code
// detection runs before these so "book ORD-1A2B3C4D again" routes to tracking.
var (
	GreetingKeywords = []string{"hi", "hello", "hey", "/start", "start", "namaste", "good morning", "good evening"}
	BookingKeywords  = []string{"book", "pickup", "pick up", "schedule", "new order", "laundry pickup"}
	TrackingKeywords = []string{"track", "status", "where is my order", "my order"}
	PricingKeywords  = []string{"price", "pricing", "rate", "rates", "cost", "charges", "how much"}
	SupportKeywords  = []string{"help", "support", "agent", "human", "complaint", "refund"}
)

const (
	// MenuMessage greets new and returning chats.
	MenuMessage = `👋 Welcome to <b>LaundryOps</b>!

Here's what I can do:
🧺 <b>book</b> — schedule a laundry pickup
📦 <b>track</b> — check your latest order
💰 <b>pricing</b> — see our rates
❓ ask me anything about our service

Just type what you need!`

	// SupportMessage answers help/complaint keywords.
	SupportMessage = `Our support team is happy to help! 💬

📞 Call us: <b>+91 20 1234 5678</b> (9 AM – 9 PM)
📧 Email: <b>support@laundryops.example</b>

You can also just ask me your question here.`

	// NoOrdersFallback answers an order question when the chat has no orders.
	// Fixed copy, no model call.
	NoOrdersFallback = `I couldn't find any orders linked to this chat yet. 🔍

Send <b>book</b> to schedule your first pickup, or share your order code (looks like <b>ORD-XXXXXXXX</b>) if you booked elsewhere.`

	// OrderNotFoundMessage answers a lookup for a code that doesn't exist.
	OrderNotFoundMessage = `I couldn't find an order with that code. 🤔

Please double-check the code (it looks like <b>ORD-XXXXXXXX</b>), or send <b>track</b> to see your latest order.`

	// GenericErrorMessage is the user-facing reply when something broke.
	GenericErrorMessage = `Sorry, something went wrong on our side. 😓 Please try again in a moment.`
)
