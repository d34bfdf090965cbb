// Package natsutil implements eventbus.Publisher on core NATS.
package natsutil

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/pinned-scores/internal/eventbus"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// HeaderMessageID carries a unique id per published event.
const HeaderMessageID = "Nats-Msg-Id"

// conn is the subset of *nats.Conn the publisher needs.
type conn interface {
	PublishMsg(m *nats.Msg) error
	Drain() error
}

// Publisher publishes JSON events to NATS subjects.
type Publisher struct {
	conn   conn
	logger *slog.Logger
}

// Connect dials url and returns a Publisher on the new connection.
func Connect(url string, logger *slog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("pinned-scores"),
		nats.RetryOnFailedConnect(true),
		nats.Timeout(30*time.Second),
		nats.ReconnectWait(1*time.Second),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				logger.Error("NATS subscription error", "subject", s.Subject, "error", err)
				return
			}
			logger.Error("NATS connection error", "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return NewPublisher(nc, logger), nil
}

// NewPublisher wraps an existing connection.
func NewPublisher(c conn, logger *slog.Logger) *Publisher {
	return &Publisher{conn: c, logger: logger}
}

// Publish encodes payload as JSON and publishes it on subject.
func (p *Publisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set(HeaderMessageID, uuid.NewString())

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	p.logger.DebugContext(ctx, "Published event", "subject", subject, "message_id", msg.Header.Get(HeaderMessageID))
	return nil
}

// Close drains the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}

var _ eventbus.Publisher = (*Publisher)(nil)
