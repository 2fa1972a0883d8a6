package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	TypeApplicationCreated = "application.created"
	TypeInterviewScored    = "interview.scored"
)

// Event is the envelope written to the activity topic.
type Event struct {
	Type       string      `json:"type"`
	UserID     uint        `json:"user_id"`
	EntityID   uint        `json:"entity_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload,omitempty"`
}

func (e Event) Key() string {
	return fmt.Sprintf("%s.%d", e.Type, e.EntityID)
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher drops every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error { return nil }
func (noopPublisher) Close() error                         { return nil }

// FakePublisher records published events, for tests.
type FakePublisher struct {
	Events []Event
	Err    error
}

func (f *FakePublisher) Publish(_ context.Context, event Event) error {
	f.Events = append(f.Events, event)
	return f.Err
}

func (f *FakePublisher) Close() error { return nil }
