package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops-bot/internal/constant"
	"laundryops-bot/internal/entity"
	"laundryops-bot/pkg/booking"
)

func testOrder() *entity.Order {
	return &entity.Order{
		OrderNumber:   "ORD-1A2B3C4D",
		ServiceChoice: booking.ChoiceDryClean,
		Status:        entity.OrderStatusInProgress,
		TotalWeightKg: 2,
		TotalPrice:    240,
		DeliveryType:  booking.DeliveryExpress,
		DeliveryTime:  time.Now().Add(12 * time.Hour),
		OutletName:    "Laundry Central",
	}
}

func TestOrderQueryNoOrdersSkipsModel(t *testing.T) {
	llmFake := &countingLLM{reply: "should never be used"}
	tracking := &fakeTrackingService{byCode: map[string]*entity.Order{}}
	svc := NewOrderQueryService(tracking, llmFake, nopLogger{})

	answer, err := svc.Answer(context.Background(), "chat-1", "where is my order?")
	require.NoError(t, err)
	assert.Equal(t, constant.NoOrdersFallback, answer)
	assert.Zero(t, llmFake.calls, "a chat with no orders must not reach the model")
}

func TestOrderQueryUnknownCodeSkipsModel(t *testing.T) {
	llmFake := &countingLLM{reply: "should never be used"}
	tracking := &fakeTrackingService{byCode: map[string]*entity.Order{}}
	svc := NewOrderQueryService(tracking, llmFake, nopLogger{})

	answer, err := svc.Answer(context.Background(), "chat-1", "what happened to ORD-DEADBEEF?")
	require.NoError(t, err)
	assert.Equal(t, constant.OrderNotFoundMessage, answer)
	assert.Zero(t, llmFake.calls)
}

func TestOrderQueryCodeBeatsLatestOrder(t *testing.T) {
	llmFake := &countingLLM{reply: "It's being cleaned right now."}
	coded := testOrder()
	tracking := &fakeTrackingService{
		byCode: map[string]*entity.Order{"ORD-1A2B3C4D": coded},
		latest: &entity.Order{OrderNumber: "ORD-99999999"},
	}
	svc := NewOrderQueryService(tracking, llmFake, nopLogger{})

	answer, err := svc.Answer(context.Background(), "chat-1", "is ord-1a2b3c4d done?")
	require.NoError(t, err)
	assert.Equal(t, "It's being cleaned right now.", answer)
	assert.EqualValues(t, 1, llmFake.calls)
}

func TestOrderQueryFallsBackToCardOnModelFailure(t *testing.T) {
	llmFake := &countingLLM{err: errors.New("model unavailable")}
	tracking := &fakeTrackingService{
		byCode: map[string]*entity.Order{},
		latest: testOrder(),
	}
	svc := NewOrderQueryService(tracking, llmFake, nopLogger{})

	answer, err := svc.Answer(context.Background(), "chat-1", "when is my order arriving?")
	require.NoError(t, err)
	assert.Contains(t, answer, "ORD-1A2B3C4D", "plain card must carry the order code")
	assert.Contains(t, answer, "in progress")
}
