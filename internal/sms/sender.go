package sms

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
)

type Message struct {
	To   string
	Body string
	Type domain.NotificationType
}

type Result struct {
	MessageID string
}

// Sender delivers an SMS. The dispatcher only depends on this interface so a
// real provider can be swapped in without touching the fan-out logic.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Result, error)
}

// SimulatedSender stands in for a real SMS provider: it waits a fixed delay
// and logs the message instead of delivering it.
type SimulatedSender struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewSimulatedSender(delay time.Duration, logger *zap.Logger) *SimulatedSender {
	return &SimulatedSender{delay: delay, logger: logger}
}

func (s *SimulatedSender) Send(ctx context.Context, msg Message) (*Result, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	id := uuid.New().String()
	s.logger.Info("sms sent",
		zap.String("message_id", id),
		zap.String("to", msg.To),
		zap.String("type", string(msg.Type)),
		zap.String("body", msg.Body))

	return &Result{MessageID: id}, nil
}
