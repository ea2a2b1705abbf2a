package service

import (
	"context"
	"errors"
	"strings"

	"laundryops-bot/internal/constant"
	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/pkg/apperror"
	"laundryops-bot/internal/pkg/logger"
	"laundryops-bot/internal/repository/contract"
	"laundryops-bot/pkg/booking"
)

type IChatbotService interface {
	// HandleMessage routes one inbound message and returns the reply. It
	// always produces user-facing copy; infrastructure failures come back as
	// the generic error message, not as an error.
	HandleMessage(ctx context.Context, chatID, senderName, text string) (string, error)
}

// deferredReply is model-bound work executed after the chat lock is released,
// so a slow generation can't block the user's next message.
type deferredReply func(ctx context.Context) (string, error)

type chatbotService struct {
	sessions   contract.SessionStore
	locker     contract.ChatLocker
	bookingSvc IBookingService
	tracking   ITrackingService
	ragSvc     IRagService
	orderQuery IOrderQueryService
	policy     booking.Policy // serviced areas are loaded per message
	log        logger.ILogger
}

func NewChatbotService(
	sessions contract.SessionStore,
	locker contract.ChatLocker,
	bookingSvc IBookingService,
	tracking ITrackingService,
	ragSvc IRagService,
	orderQuery IOrderQueryService,
	policy booking.Policy,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		sessions:   sessions,
		locker:     locker,
		bookingSvc: bookingSvc,
		tracking:   tracking,
		ragSvc:     ragSvc,
		orderQuery: orderQuery,
		policy:     policy,
		log:        log,
	}
}

func (s *chatbotService) HandleMessage(ctx context.Context, chatID, senderName, text string) (string, error) {
	reply, deferred := s.dispatch(ctx, chatID, senderName, text)
	if deferred == nil {
		return reply, nil
	}

	answer, err := deferred(ctx)
	if err != nil {
		s.log.Error("chatbot", "pipeline failed", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		return constant.GenericErrorMessage, nil
	}
	return answer, nil
}

// dispatch runs under the chat lock: session reads, state transitions, and
// order creation are serialized per chat identity. Model calls are returned
// as deferred work instead.
func (s *chatbotService) dispatch(ctx context.Context, chatID, senderName, text string) (string, deferredReply) {
	unlock := s.locker.LockChat(chatID)
	defer unlock()

	state, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		s.log.Error("chatbot", "session load failed", map[string]interface{}{"chat_id": chatID, "error": err.Error()})
		return constant.GenericErrorMessage, nil
	}

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if state.Stage != entity.StageIdle {
		return s.advanceBooking(ctx, state, senderName, trimmed), nil
	}

	switch {
	case trimmed == "":
		return constant.MenuMessage, nil

	case lower == "cancel" || lower == "/cancel":
		return "Nothing to cancel right now. 👍 Send <b>book</b> to schedule a pickup.", nil

	case matchesAny(lower, constant.GreetingKeywords):
		return constant.MenuMessage, nil

	// An order code beats every other intent, including booking keywords:
	// "book ORD-1A2B3C4D again" is a question about that order.
	case ExtractOrderCode(trimmed) != "":
		return s.routeOrderCode(ctx, chatID, trimmed)

	case matchesAny(lower, constant.BookingKeywords):
		return s.startBooking(ctx, state), nil

	case matchesAny(lower, constant.TrackingKeywords):
		return s.trackLatest(ctx, chatID), nil

	// A bare rate enquiry gets the deterministic table; pricing or policy
	// phrasing goes through grounded retrieval.
	case matchesAny(lower, constant.PricingKeywords):
		if len(strings.Fields(trimmed)) <= 2 {
			return s.pricingTable(ctx), nil
		}
		return "", func(ctx context.Context) (string, error) {
			return s.ragSvc.Answer(ctx, trimmed)
		}

	case matchesAny(lower, constant.SupportKeywords):
		if len(strings.Fields(trimmed)) <= 2 {
			return constant.SupportMessage, nil
		}
		return "", func(ctx context.Context) (string, error) {
			return s.ragSvc.Answer(ctx, trimmed)
		}

	// Catch-all: treat anything else as a question about the caller's own
	// order. With no linked order this answers with fixed copy, never a
	// model call.
	default:
		return "", func(ctx context.Context) (string, error) {
			return s.orderQuery.Answer(ctx, chatID, trimmed)
		}
	}
}

// routeOrderCode answers a bare code with the tracking card directly; a code
// embedded in a longer question goes through grounded generation.
func (s *chatbotService) routeOrderCode(ctx context.Context, chatID, trimmed string) (string, deferredReply) {
	code := ExtractOrderCode(trimmed)

	if len(strings.Fields(trimmed)) <= 2 {
		order, err := s.tracking.FindOrderByCode(ctx, code)
		if errors.Is(err, apperror.ErrOrderNotFound) {
			return constant.OrderNotFoundMessage, nil
		}
		if err != nil {
			s.log.Error("chatbot", "order lookup failed", map[string]interface{}{"code": code, "error": err.Error()})
			return constant.GenericErrorMessage, nil
		}
		return RenderOrderCard(order), nil
	}

	return "", func(ctx context.Context) (string, error) {
		return s.orderQuery.Answer(ctx, chatID, trimmed)
	}
}

func (s *chatbotService) startBooking(ctx context.Context, state *entity.ConversationState) string {
	machine, err := s.newMachine(ctx)
	if err != nil {
		s.log.Error("chatbot", "booking start failed", map[string]interface{}{"error": err.Error()})
		return constant.GenericErrorMessage
	}

	res := machine.Start()
	state.Stage = res.Stage
	state.Draft = res.Draft
	if err := s.sessions.Put(ctx, state); err != nil {
		s.log.Error("chatbot", "session save failed", map[string]interface{}{"chat_id": state.ChatID, "error": err.Error()})
		return constant.GenericErrorMessage
	}
	return res.Reply
}

func (s *chatbotService) advanceBooking(ctx context.Context, state *entity.ConversationState, senderName, text string) string {
	machine, err := s.newMachine(ctx)
	if err != nil {
		s.log.Error("chatbot", "booking advance failed", map[string]interface{}{"error": err.Error()})
		return constant.GenericErrorMessage
	}

	res := machine.Next(state.Stage, state.Draft, text)

	switch {
	case res.Completed:
		order, err := s.bookingSvc.CompleteBooking(ctx, state.ChatID, senderName, res.Draft)
		if err != nil {
			// Leave the dialogue at confirmation so the user can retry.
			s.log.Error("chatbot", "booking completion failed", map[string]interface{}{"chat_id": state.ChatID, "error": err.Error()})
			if putErr := s.sessions.Put(ctx, state); putErr != nil {
				s.log.Error("chatbot", "session save failed", map[string]interface{}{"chat_id": state.ChatID, "error": putErr.Error()})
			}
			return constant.GenericErrorMessage
		}
		if err := s.sessions.Reset(ctx, state.ChatID); err != nil {
			s.log.Error("chatbot", "session reset failed", map[string]interface{}{"chat_id": state.ChatID, "error": err.Error()})
		}
		return RenderBookingConfirmation(order)

	case res.Cancelled:
		if err := s.sessions.Reset(ctx, state.ChatID); err != nil {
			s.log.Error("chatbot", "session reset failed", map[string]interface{}{"chat_id": state.ChatID, "error": err.Error()})
		}
		return res.Reply

	default:
		state.Stage = res.Stage
		state.Draft = res.Draft
		if err := s.sessions.Put(ctx, state); err != nil {
			s.log.Error("chatbot", "session save failed", map[string]interface{}{"chat_id": state.ChatID, "error": err.Error()})
			return constant.GenericErrorMessage
		}
		return res.Reply
	}
}

func (s *chatbotService) trackLatest(ctx context.Context, chatID string) string {
	order, err := s.tracking.FindLatestOrderByChatID(ctx, chatID)
	if errors.Is(err, apperror.ErrNoLinkedOrder) {
		return constant.NoOrdersFallback
	}
	if err != nil {
		s.log.Error("chatbot", "latest order lookup failed", map[string]interface{}{"chat_id": chatID, "error": err.Error()})
		return constant.GenericErrorMessage
	}
	return RenderOrderCard(order)
}

func (s *chatbotService) pricingTable(ctx context.Context) string {
	catalog, err := s.bookingSvc.LoadCatalog(ctx)
	if err != nil {
		s.log.Error("chatbot", "catalog load failed", map[string]interface{}{"error": err.Error()})
		return constant.GenericErrorMessage
	}
	return RenderPricingTable(catalog, s.policy.ExpressSurcharge)
}

// newMachine assembles a state machine with the current catalog and serviced
// areas, so rate changes take effect without a restart.
func (s *chatbotService) newMachine(ctx context.Context) (*booking.Machine, error) {
	catalog, err := s.bookingSvc.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	areas, err := s.bookingSvc.LoadServicedAreas(ctx)
	if err != nil {
		return nil, err
	}

	policy := s.policy
	policy.ServicedAreas = areas
	return booking.NewMachine(policy, catalog), nil
}

// matchesAny reports whether the message matches a keyword set. Single-word
// keywords match on whole tokens; phrases match as substrings.
func matchesAny(lower string, keywords []string) bool {
	var tokens []string
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if tokens == nil {
			tokens = strings.FieldsFunc(lower, func(r rune) bool {
				return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
			})
		}
		for _, tok := range tokens {
			if tok == kw {
				return true
			}
		}
	}
	return false
}
