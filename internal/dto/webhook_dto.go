package dto

// TelegramUpdate is the slice of the Bot API update payload this service
// consumes. Unknown fields are ignored on purpose.
type TelegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message"`
}

type TelegramMessage struct {
	MessageID int64         `json:"message_id"`
	From      *TelegramUser `json:"from"`
	Chat      TelegramChat  `json:"chat"`
	Text      string        `json:"text"`
	Date      int64         `json:"date"`
}

type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type TelegramChat struct {
	ID int64 `json:"id"`
}

// WebhookReply is the body returned to the webhook caller. Telegram accepts
// an inline method call in the response, which saves one round trip.
type WebhookReply struct {
	Method    string `json:"method,omitempty"`
	ChatID    int64  `json:"chat_id,omitempty"`
	Text      string `json:"text,omitempty"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SimulateChatRequest drives the chat pipeline without Telegram, used by the
// local testing endpoint.
type SimulateChatRequest struct {
	ChatID  string `json:"chat_id" validate:"required"`
	Message string `json:"message" validate:"required"`
	Name    string `json:"name,omitempty"`
}

type SimulateChatResponse struct {
	Reply string `json:"reply"`
}
