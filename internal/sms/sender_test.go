package sms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
)

func TestSimulatedSend_ReturnsMessageID(t *testing.T) {
	sender := NewSimulatedSender(0, zap.NewNop())

	res, err := sender.Send(context.Background(), Message{
		To:   "+91 9876543210",
		Body: "test",
		Type: domain.NotificationOrderPlaced,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.MessageID)
}

func TestSimulatedSend_HonoursContextCancellation(t *testing.T) {
	sender := NewSimulatedSender(time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sender.Send(ctx, Message{To: "+91 9876543210"})
	assert.Error(t, err)
}
