package apperror

import "errors"

// Conversational error taxonomy. Validation problems during booking are not
// errors at all (the state machine re-prompts); these cover the lookup and
// upstream cases the router must distinguish when rendering a reply.
var (
	// ErrOrderNotFound: an explicit order code resolved to nothing.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNoLinkedOrder: no order is linked to this chat identity.
	ErrNoLinkedOrder = errors.New("no order linked to chat")

	// ErrNoActiveOutlet: no outlet can accept the booking right now.
	ErrNoActiveOutlet = errors.New("no active outlet")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrNoLinkedOrder)
}
