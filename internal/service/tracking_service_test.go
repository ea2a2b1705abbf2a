package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateCustomerIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCustomerRepo()
	svc := NewTrackingService(fakeUowFactory{uow: &fakeUnitOfWork{customers: repo}})

	first, err := svc.FindOrCreateCustomer(ctx, "chat-42", "Asha")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.FindOrCreateCustomer(ctx, "chat-42", "Someone Else")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.Id, second.Id, "same chat identity resolved to different customers")
	assert.Equal(t, 1, repo.creates, "repeated resolution created a duplicate record")
	assert.Equal(t, "Asha", second.FullName, "first contact owns the stored name")

	third, err := svc.FindOrCreateCustomer(ctx, "chat-43", "Ravi")
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, third.Id)
	assert.Equal(t, 2, repo.creates)
}
