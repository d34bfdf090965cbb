package scoreservice

import (
	"context"
	"sync"

	"github.com/Black-And-White-Club/pinned-scores/internal/eventbus"
)

type publishedEvent struct {
	Subject string
	Payload any
}

// FakePublisher records published events.
type FakePublisher struct {
	PublishFunc func(ctx context.Context, subject string, payload any) error

	mu     sync.Mutex
	events []publishedEvent
}

func (f *FakePublisher) Publish(ctx context.Context, subject string, payload any) error {
	f.mu.Lock()
	f.events = append(f.events, publishedEvent{Subject: subject, Payload: payload})
	f.mu.Unlock()
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, subject, payload)
	}
	return nil
}

func (f *FakePublisher) Close() error { return nil }

func (f *FakePublisher) Events() []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]publishedEvent, len(f.events))
	copy(out, f.events)
	return out
}

var _ eventbus.Publisher = (*FakePublisher)(nil)
