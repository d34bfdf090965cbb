// Package eventbus defines the outbound event publisher used by the modules.
package eventbus

import "context"

// Publisher publishes a JSON-encodable payload on a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (NoopPublisher) Close() error { return nil }

var _ Publisher = NoopPublisher{}
