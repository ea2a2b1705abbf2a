package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops-bot/internal/constant"
	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/repository/memory"
	"laundryops-bot/pkg/booking"
)

func testPolicy() booking.Policy {
	return booking.Policy{
		ServicedCity:     "pune",
		DefaultWeightKg:  3.0,
		ExpressSurcharge: 0.30,
		MinWeightKg:      0.5,
		MaxWeightKg:      100.0,
	}
}

type chatbotFixture struct {
	svc        IChatbotService
	sessions   *memory.SessionStore
	bookingSvc *fakeBookingService
	tracking   *fakeTrackingService
	rag        *fakeRagService
	orderQuery *fakeOrderQueryService
}

func newChatbotFixture() *chatbotFixture {
	sessions := memory.NewSessionStore(30*time.Minute, time.Minute)
	bookingSvc := &fakeBookingService{}
	tracking := &fakeTrackingService{byCode: map[string]*entity.Order{}}
	rag := &fakeRagService{answer: "grounded answer"}
	orderQuery := &fakeOrderQueryService{answer: "order answer"}

	svc := NewChatbotService(sessions, sessions, bookingSvc, tracking, rag, orderQuery, testPolicy(), nopLogger{})
	return &chatbotFixture{
		svc:        svc,
		sessions:   sessions,
		bookingSvc: bookingSvc,
		tracking:   tracking,
		rag:        rag,
		orderQuery: orderQuery,
	}
}

func TestChatbotIntentRouting(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		message         string
		wantContains    string
		wantRagCalls    int32
		wantOrderCalls  int32
		prepareTracking func(f *chatbotFixture)
	}{
		{
			name:         "greeting shows menu",
			message:      "hello",
			wantContains: "Welcome to",
		},
		{
			name:         "start command shows menu",
			message:      "/start",
			wantContains: "Welcome to",
		},
		{
			name:         "cancel with nothing in progress",
			message:      "cancel",
			wantContains: "Nothing to cancel",
		},
		{
			name:         "bare pricing word renders rates",
			message:      "pricing",
			wantContains: "Our Rates",
		},
		{
			name:         "pricing phrasing goes to retrieval",
			message:      "what are your rates for dry cleaning",
			wantContains: "grounded answer",
			wantRagCalls: 1,
		},
		{
			name:         "bare support word",
			message:      "help",
			wantContains: "support team",
		},
		{
			name:         "complaint phrasing goes to retrieval",
			message:      "I have a complaint about a missing shirt",
			wantContains: "grounded answer",
			wantRagCalls: 1,
		},
		{
			name:         "track with no orders",
			message:      "track",
			wantContains: "couldn't find any orders",
		},
		{
			name:         "unknown code replies not found",
			message:      "ORD-DEADBEEF",
			wantContains: "couldn't find an order with that code",
		},
		{
			name:           "free-form question falls back to order query",
			message:        "do you remove turmeric stains?",
			wantContains:   "order answer",
			wantOrderCalls: 1,
		},
		{
			name:           "order question goes to order query",
			message:        "when will my laundry be delivered?",
			wantContains:   "order answer",
			wantOrderCalls: 1,
		},
		{
			name:           "code embedded in question goes to order query",
			message:        "is ORD-1A2B3C4D ready for pickup yet?",
			wantContains:   "order answer",
			wantOrderCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newChatbotFixture()
			if tt.prepareTracking != nil {
				tt.prepareTracking(f)
			}

			reply, err := f.svc.HandleMessage(ctx, "chat-1", "Asha", tt.message)
			require.NoError(t, err)
			assert.Contains(t, reply, tt.wantContains)
			assert.Equal(t, tt.wantRagCalls, f.rag.calls, "rag pipeline calls")
			assert.Equal(t, tt.wantOrderCalls, f.orderQuery.calls, "order query pipeline calls")
		})
	}
}

func TestChatbotBareCodeRendersCard(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture()
	f.tracking.byCode["ORD-1A2B3C4D"] = &entity.Order{
		OrderNumber:   "ORD-1A2B3C4D",
		ServiceChoice: booking.ChoiceWashIron,
		Status:        entity.OrderStatusReady,
		TotalWeightKg: 4,
		TotalPrice:    320,
		DeliveryType:  booking.DeliveryStandard,
		DeliveryTime:  time.Now().Add(24 * time.Hour),
		OutletName:    "Laundry Central",
	}

	reply, err := f.svc.HandleMessage(ctx, "chat-1", "Asha", "ord-1a2b3c4d")
	require.NoError(t, err)
	assert.Contains(t, reply, "ORD-1A2B3C4D")
	assert.Contains(t, reply, "ready")
	assert.Zero(t, f.orderQuery.calls, "bare code must not hit the model pipeline")
}

func TestChatbotBookingFlow(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture()

	steps := []struct {
		message      string
		wantContains string
	}{
		{"book a pickup", "address"},
		{"12 MG Road, Kothrud, Pune", "phone number"},
		{"9876543210", "service"},
		{"wash and iron", "weight"},
		{"4 kg", "instructions"},
		{"skip", "Booking Summary"},
	}

	for _, step := range steps {
		reply, err := f.svc.HandleMessage(ctx, "chat-7", "Asha", step.message)
		require.NoError(t, err)
		require.Contains(t, strings.ToLower(reply), strings.ToLower(step.wantContains), "message %q", step.message)
	}

	reply, err := f.svc.HandleMessage(ctx, "chat-7", "Asha", "yes")
	require.NoError(t, err)
	assert.Contains(t, reply, "Booking confirmed")
	assert.Contains(t, reply, "ORD-")
	assert.EqualValues(t, 1, f.bookingSvc.completions)

	// Session is idle again: a repeated "yes" must not create a second order.
	reply, err = f.svc.HandleMessage(ctx, "chat-7", "Asha", "yes")
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.bookingSvc.completions, "duplicate confirmation created a second order")
	assert.NotContains(t, reply, "Booking confirmed")

	state, err := f.sessions.Get(ctx, "chat-7")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, state.Stage)
}

func TestChatbotConcurrentPhoneRepliesAdvanceOnce(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture()

	for _, msg := range []string{"book", "12 MG Road, Kothrud, Pune"} {
		_, err := f.svc.HandleMessage(ctx, "chat-5", "Asha", msg)
		require.NoError(t, err)
	}

	state, err := f.sessions.Get(ctx, "chat-5")
	require.NoError(t, err)
	require.Equal(t, entity.StageAwaitingPhone, state.Stage)

	// A double-sent phone reply: the chat lock serializes the two turns, so
	// only the first advances; the second is read as (invalid) service input
	// and re-prompts without moving the dialogue.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.HandleMessage(ctx, "chat-5", "Asha", "9876543210")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err = f.sessions.Get(ctx, "chat-5")
	require.NoError(t, err)
	assert.Equal(t, entity.StageAwaitingService, state.Stage, "duplicate reply advanced the dialogue twice")
	assert.Equal(t, "9876543210", state.Draft.Phone)
}

func TestChatbotBookingCompletionFailureKeepsConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture()
	f.bookingSvc.completeErr = errors.New("db down")

	for _, msg := range []string{"book", "kothrud, pune", "9876543210", "1", "3 kg", "skip"} {
		_, err := f.svc.HandleMessage(ctx, "chat-9", "Asha", msg)
		require.NoError(t, err)
	}

	reply, err := f.svc.HandleMessage(ctx, "chat-9", "Asha", "yes")
	require.NoError(t, err)
	assert.Equal(t, constant.GenericErrorMessage, reply)

	state, err := f.sessions.Get(ctx, "chat-9")
	require.NoError(t, err)
	assert.Equal(t, entity.StageAwaitingConfirmation, state.Stage, "failed completion must keep the dialogue at confirmation")

	// Retry succeeds once the backend is back.
	f.bookingSvc.completeErr = nil
	reply, err = f.svc.HandleMessage(ctx, "chat-9", "Asha", "yes")
	require.NoError(t, err)
	assert.Contains(t, reply, "Booking confirmed")
}

func TestChatbotCancelMidBooking(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture()

	_, err := f.svc.HandleMessage(ctx, "chat-2", "Asha", "book")
	require.NoError(t, err)

	reply, err := f.svc.HandleMessage(ctx, "chat-2", "Asha", "cancel")
	require.NoError(t, err)
	assert.Contains(t, reply, "cancelled")

	state, err := f.sessions.Get(ctx, "chat-2")
	require.NoError(t, err)
	assert.Equal(t, entity.StageIdle, state.Stage)
	assert.True(t, state.Draft.IsEmpty())
}

func TestChatbotBookingKeywordMidBookingIsInput(t *testing.T) {
	ctx := context.Background()
	f := newChatbotFixture()

	_, err := f.svc.HandleMessage(ctx, "chat-3", "Asha", "book")
	require.NoError(t, err)

	// "book" again mid-dialogue is treated as the address answer, not a
	// restart; it fails the area check and re-prompts.
	reply, err := f.svc.HandleMessage(ctx, "chat-3", "Asha", "book")
	require.NoError(t, err)
	assert.NotContains(t, reply, "Let's get your laundry")

	state, err := f.sessions.Get(ctx, "chat-3")
	require.NoError(t, err)
	assert.Equal(t, entity.StageAwaitingAddress, state.Stage)
}

func TestExtractOrderCode(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"ORD-1A2B3C4D", "ORD-1A2B3C4D"},
		{"ord-1a2b3c4d", "ORD-1A2B3C4D"},
		{"where is ORD1A2B3C4D?", "ORD-1A2B3C4D"},
		{"no code here", ""},
		{"ORD-123", ""},
		{"word order", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractOrderCode(tt.message), "message %q", tt.message)
	}
}

func TestNewOrderNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := NewOrderNumber()
		require.Regexp(t, `^ORD-[0-9A-F]{8}$`, code)
		require.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
